package driver

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// terminalScript opens a new Terminal tab, runs the binary in it, sends
// the usage command after a settle delay, reads the visible tab contents,
// then exits and closes the tab.
const terminalScript = `
tell application "Terminal"
	set newTab to do script "%s"
	delay 2
	do script "/usage" in newTab
	delay 2
	set output to contents of newTab
	do script "exit" in newTab
	delay 1
	close newTab
	return output
end tell
`

// Terminal scripts the macOS Terminal application through osascript. It is
// the last resort: slower than the other drivers and dependent on the user
// having granted automation permissions.
type Terminal struct {
	Binary  string
	Timeout time.Duration
	Logf    Logf
}

func (t *Terminal) Name() string { return "terminal-automation" }

// Available restricts the driver to macOS, the only platform with an
// osascript automation host.
func (t *Terminal) Available() bool { return runtime.GOOS == "darwin" }

func (t *Terminal) Fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	script := fmt.Sprintf(terminalScript, t.Binary)
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("timed out after %v", t.Timeout)
	}
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	return string(out), nil
}
