// Package snapshot builds and persists the usage file read by the pet UI.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// Limit is the fixed denominator for the 5-hour usage window.
	Limit = 100

	// WindowType labels the quota window the snapshot describes.
	WindowType = "5-hour"

	// Source identifies how the snapshot was produced.
	Source = "auto-fetch from Claude Code"

	// ResetOffset is how far ahead of the capture time the window resets.
	ResetOffset = 5 * time.Hour
)

// UsageSnapshot is the persisted record. Field order matches the file the
// pet UI already consumes, so it must stay stable.
type UsageSnapshot struct {
	Percentage   int    `json:"percentage"`
	Used         int    `json:"used"`
	Limit        int    `json:"limit"`
	ResetAt      string `json:"resetAt"`
	Subscription string `json:"subscription"`
	Type         string `json:"type"`
	RealData     bool   `json:"realData"`
	Timestamp    string `json:"timestamp"`
	Source       string `json:"source"`
}

// DefaultPath returns the fixed snapshot location (~/.openclaw-pet/real-usage.json).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".openclaw-pet", "real-usage.json")
	}
	return filepath.Join(home, ".openclaw-pet", "real-usage.json")
}

// Build constructs a snapshot for the given percentage at the given time.
func Build(percentage int, now time.Time, subscription string) *UsageSnapshot {
	return &UsageSnapshot{
		Percentage:   percentage,
		Used:         percentage,
		Limit:        Limit,
		ResetAt:      now.Add(ResetOffset).Format(time.RFC3339),
		Subscription: subscription,
		Type:         WindowType,
		RealData:     true,
		Timestamp:    now.Format(time.RFC3339),
		Source:       Source,
	}
}

// Save writes the snapshot to path, creating the containing directory if
// needed and fully replacing any existing file.
func Save(path string, snap *UsageSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
