package driver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
)

// promptPatterns are the known shapes of the claude CLI prompt, checked
// against the accumulated output while waiting for the session to come up.
var promptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`desktop_bot.*>`),
	regexp.MustCompile(`(?i)How can I help`),
	regexp.MustCompile(`claude>`),
	regexp.MustCompile(`>\s*$`),
}

// Session drives the target binary under a pseudo-terminal: wait for a
// recognizable prompt, send the usage command, collect the response.
type Session struct {
	Binary          string
	PromptTimeout   time.Duration
	ResponseTimeout time.Duration
	Logf            Logf
}

func (s *Session) Name() string { return "interactive-session" }

// Available is always true; the PTY spawn itself reports failure on
// platforms or environments without pseudo-terminal support.
func (s *Session) Available() bool { return true }

// Fetch spawns the binary on a PTY and scrapes the usage response. The
// response wait timing out is not fatal: whatever was buffered after the
// prompt is still returned, since it often already contains the number.
func (s *Session) Fetch(ctx context.Context) (string, error) {
	cmd := exec.Command(s.Binary)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	f, err := pty.Start(cmd)
	if err != nil {
		return "", fmt.Errorf("spawn %s on pty: %w", s.Binary, err)
	}
	defer func() {
		// Best-effort shutdown: ask the session to exit, then make sure
		// the whole process group is gone before the next driver runs.
		_, _ = f.WriteString("exit\r")
		_ = f.Close()
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		_ = cmd.Wait()
	}()

	pre, err := s.readUntil(ctx, f, s.PromptTimeout, matchesPrompt)
	if err != nil {
		return "", fmt.Errorf("waiting for prompt: %w", err)
	}

	s.Logf.printf("claude session started, sending /usage command...")
	if _, err := f.WriteString("/usage\r"); err != nil {
		return "", fmt.Errorf("send usage command: %w", err)
	}

	resp, err := s.readUntil(ctx, f, s.ResponseTimeout, func(buf string) bool {
		return strings.Contains(buf, "%")
	})
	if err != nil {
		// Partial success: the prompt was matched, so return whatever was
		// buffered in case the number is already in it.
		s.Logf.printf("response wait: %v (returning buffered output)", err)
	}
	return pre + resp, nil
}

// readUntil accumulates PTY output until done(buffer) is true, the
// deadline passes, or the stream ends. The accumulated buffer is returned
// in every case; the error reports why reading stopped early.
func (s *Session) readUntil(ctx context.Context, f *os.File, timeout time.Duration, done func(string) bool) (string, error) {
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	var buf strings.Builder
	chunk := make([]byte, 4096)
	for {
		if err := ctx.Err(); err != nil {
			return buf.String(), err
		}
		if err := f.SetReadDeadline(deadline); err != nil {
			return buf.String(), fmt.Errorf("set read deadline: %w", err)
		}
		n, err := f.Read(chunk)
		if n > 0 {
			// Invalid byte sequences are dropped, never surfaced as errors.
			buf.WriteString(strings.ToValidUTF8(string(chunk[:n]), ""))
			if done(buf.String()) {
				return buf.String(), nil
			}
		}
		if err != nil {
			if os.IsTimeout(err) {
				return buf.String(), fmt.Errorf("timed out after %v", timeout)
			}
			// PTY reads surface EIO when the child side closes; treat any
			// read error as end of stream.
			return buf.String(), fmt.Errorf("session ended before match: %w", err)
		}
	}
}

func matchesPrompt(buf string) bool {
	for _, p := range promptPatterns {
		if p.MatchString(buf) {
			return true
		}
	}
	return false
}
