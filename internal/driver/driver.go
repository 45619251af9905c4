// Package driver captures raw text from an interactive claude session.
//
// Three heterogeneous capture mechanisms (pseudo-terminal, plain pipes,
// macOS Terminal scripting) share one contract: attempt to obtain raw
// output within a timeout, return text or an error, never panic. The
// orchestrator walks them in order and stops at the first success.
package driver

import (
	"context"
	"errors"
	"strings"
)

// Logf receives human-readable progress lines. May be nil.
type Logf func(format string, args ...any)

func (l Logf) printf(format string, args ...any) {
	if l != nil {
		l(format, args...)
	}
}

// ErrExhausted is returned when every applicable driver failed to capture
// any output.
var ErrExhausted = errors.New("all drivers failed to capture claude output")

// Driver is one capture strategy.
type Driver interface {
	// Name identifies the driver in logs.
	Name() string

	// Available reports whether the driver can run on this platform.
	Available() bool

	// Fetch attempts to capture raw session output. A failed attempt
	// returns an error; partial output with a nil error counts as success.
	Fetch(ctx context.Context) (string, error)
}

// FirstOutput tries drivers in order and returns the first non-empty
// capture. Unavailable drivers are skipped; failures are logged and control
// falls through to the next driver. When no driver produces output the
// returned error wraps ErrExhausted.
func FirstOutput(ctx context.Context, drivers []Driver, logf Logf) (string, error) {
	for _, d := range drivers {
		if !d.Available() {
			continue
		}
		logf.printf("trying %s driver...", d.Name())
		out, err := d.Fetch(ctx)
		if err != nil {
			logf.printf("%s driver: %v", d.Name(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			logf.printf("%s driver returned no output", d.Name())
			continue
		}
		logf.printf("%s driver captured %d bytes", d.Name(), len(out))
		return out, nil
	}
	return "", ErrExhausted
}
