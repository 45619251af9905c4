package cli

import (
	"errors"
	"testing"

	"github.com/openclaw/clawfetch/internal/parse"
)

func TestFormatPanelUsage(t *testing.T) {
	tests := []struct {
		name      string
		pct       int
		wantText  string
		wantClass string
	}{
		{name: "low usage", pct: 12, wantText: "12%", wantClass: "normal"},
		{name: "just under warning", pct: 69, wantText: "69%", wantClass: "normal"},
		{name: "warning threshold", pct: 70, wantText: "70%", wantClass: "warning"},
		{name: "critical threshold", pct: 85, wantText: "85%", wantClass: "critical"},
		{name: "full window", pct: 100, wantText: "100%", wantClass: "critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatPanelUsage(tt.pct)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Alt != "ok" {
				t.Errorf("Alt = %q, want %q", got.Alt, "ok")
			}
			if got.Class != tt.wantClass {
				t.Errorf("Class = %q, want %q", got.Class, tt.wantClass)
			}
		})
	}
}

func TestFormatPanelAuthError(t *testing.T) {
	tests := []struct {
		name      string
		authError *parse.AuthError
		wantText  string
		wantAlt   string
		wantClass string
	}{
		{
			name: "not logged in",
			authError: &parse.AuthError{
				Code:    parse.AuthErrorNotLoggedIn,
				Message: "Not logged in",
			},
			wantText:  "Claude",
			wantAlt:   "not_logged_in",
			wantClass: "auth_error",
		},
		{
			name: "token expired",
			authError: &parse.AuthError{
				Code:    parse.AuthErrorTokenExpired,
				Message: "Token expired",
			},
			wantText:  "Claude",
			wantAlt:   "token_expired",
			wantClass: "auth_error",
		},
		{
			name: "no subscription",
			authError: &parse.AuthError{
				Code:    parse.AuthErrorNoSubscription,
				Message: "No subscription",
			},
			wantText:  "Claude",
			wantAlt:   "no_subscription",
			wantClass: "auth_error",
		},
		{
			name: "setup required",
			authError: &parse.AuthError{
				Code:    parse.AuthErrorSetupRequired,
				Message: "Setup required",
			},
			wantText:  "Claude",
			wantAlt:   "setup_required",
			wantClass: "auth_error",
		},
		{
			name:      "nil error",
			authError: nil,
			wantText:  "--",
			wantAlt:   "error",
			wantClass: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatPanelAuthError(tt.authError)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Alt != tt.wantAlt {
				t.Errorf("Alt = %q, want %q", got.Alt, tt.wantAlt)
			}
			if got.Class != tt.wantClass {
				t.Errorf("Class = %q, want %q", got.Class, tt.wantClass)
			}
		})
	}
}

func TestFormatPanelFailureTooltip(t *testing.T) {
	got := formatPanelFailure(errors.New("all drivers failed"))
	if got.Tooltip != "all drivers failed" {
		t.Errorf("Tooltip = %q, want the error text", got.Tooltip)
	}
	if got.Class != "error" {
		t.Errorf("Class = %q, want %q", got.Class, "error")
	}
}
