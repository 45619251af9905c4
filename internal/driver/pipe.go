package driver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Pipe drives the target binary with plain redirected standard streams.
// No PTY means the CLI may refuse to render its interactive UI, but some
// versions still answer slash commands on stdin, so it is worth a try
// before falling back to terminal automation.
type Pipe struct {
	Binary  string
	Timeout time.Duration
	Logf    Logf
}

func (p *Pipe) Name() string { return "pipe" }

func (p *Pipe) Available() bool { return true }

// Fetch writes the usage command followed by an exit command to stdin and
// collects combined output. A non-zero exit with output still counts as a
// capture; a timeout or spawn failure does not.
func (p *Pipe) Fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Binary)
	cmd.Stdin = strings.NewReader("/usage\nexit\n")

	out, err := cmd.CombinedOutput()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("timed out after %v", p.Timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(out) > 0 {
			// The CLI exited unhappily but produced output; let the
			// parser decide whether it is useful.
			p.Logf.printf("pipe: %s exited with %v, keeping output", p.Binary, err)
			return strings.ToValidUTF8(string(out), ""), nil
		}
		return "", fmt.Errorf("run %s: %w", p.Binary, err)
	}
	return strings.ToValidUTF8(string(out), ""), nil
}
