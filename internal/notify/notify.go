// Package notify sends a desktop notification when the snapshot updates.
package notify

import (
	"fmt"
	"runtime"

	"github.com/godbus/dbus/v5"
)

// Supported reports whether desktop notifications can work on this
// platform. Only the freedesktop session bus is wired up.
func Supported() bool {
	return runtime.GOOS == "linux"
}

// UsageUpdated raises an org.freedesktop.Notifications popup with the new
// percentage. Callers treat any error as non-fatal; a missing session bus
// or notification daemon must never fail the run.
func UsageUpdated(percentage int) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions,
	// hints, expire_timeout). No icon, no actions, expire after 5s.
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"clawfetch", uint32(0), "", "Claude usage updated",
		fmt.Sprintf("Current 5-hour window: %d%% used", percentage),
		[]string{}, map[string]dbus.Variant{}, int32(5000))
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
