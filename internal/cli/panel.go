package cli

import (
	"fmt"

	"github.com/openclaw/clawfetch/internal/parse"
)

// PanelOutput is the JSON object consumed by status-bar custom modules
// (HyprPanel, Waybar). Class selects the CSS style.
type PanelOutput struct {
	Text    string `json:"text"`
	Alt     string `json:"alt"`
	Class   string `json:"class"`
	Tooltip string `json:"tooltip,omitempty"`
}

// formatPanelUsage renders a successful capture. The class escalates as
// the window fills up so bars can color-code it.
func formatPanelUsage(percentage int) PanelOutput {
	class := "normal"
	switch {
	case percentage >= 85:
		class = "critical"
	case percentage >= 70:
		class = "warning"
	}
	return PanelOutput{
		Text:    fmt.Sprintf("%d%%", percentage),
		Alt:     "ok",
		Class:   class,
		Tooltip: fmt.Sprintf("Claude 5-hour window: %d%% used", percentage),
	}
}

// formatPanelAuthError renders an authentication problem. A nil error
// degrades to the generic failure rendering.
func formatPanelAuthError(authErr *parse.AuthError) PanelOutput {
	if authErr == nil {
		return formatPanelFailure(nil)
	}
	return PanelOutput{
		Text:    "Claude",
		Alt:     string(authErr.Code),
		Class:   "auth_error",
		Tooltip: authErr.Message,
	}
}

// formatPanelFailure renders any non-auth failure.
func formatPanelFailure(err error) PanelOutput {
	out := PanelOutput{
		Text:  "--",
		Alt:   "error",
		Class: "error",
	}
	if err != nil {
		out.Tooltip = err.Error()
	}
	return out
}
