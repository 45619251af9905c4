package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBuild(t *testing.T) {
	now := time.Date(2026, 2, 7, 14, 30, 0, 0, time.UTC)
	snap := Build(73, now, "Claude Pro")

	if snap.Percentage != 73 {
		t.Errorf("Percentage = %d, want 73", snap.Percentage)
	}
	if snap.Used != 73 {
		t.Errorf("Used = %d, want 73", snap.Used)
	}
	if snap.Limit != 100 {
		t.Errorf("Limit = %d, want 100", snap.Limit)
	}
	if !snap.RealData {
		t.Error("RealData = false, want true")
	}
	if snap.Type != "5-hour" {
		t.Errorf("Type = %q, want %q", snap.Type, "5-hour")
	}
	if snap.Subscription != "Claude Pro" {
		t.Errorf("Subscription = %q, want %q", snap.Subscription, "Claude Pro")
	}

	ts, err := time.Parse(time.RFC3339, snap.Timestamp)
	if err != nil {
		t.Fatalf("Timestamp %q is not RFC3339: %v", snap.Timestamp, err)
	}
	reset, err := time.Parse(time.RFC3339, snap.ResetAt)
	if err != nil {
		t.Fatalf("ResetAt %q is not RFC3339: %v", snap.ResetAt, err)
	}
	if got := reset.Sub(ts); got != 5*time.Hour {
		t.Errorf("ResetAt - Timestamp = %v, want 5h", got)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "real-usage.json")
	snap := Build(10, time.Now(), "Claude Pro")
	if err := Save(path, snap); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "real-usage.json")

	if err := Save(path, Build(42, time.Now(), "Claude Pro")); err != nil {
		t.Fatalf("first Save() error: %v", err)
	}
	if err := Save(path, Build(87, time.Now(), "Claude Pro")); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want exactly 1", len(entries))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got UsageSnapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if got.Percentage != 87 || got.Used != 87 {
		t.Errorf("persisted percentage = %d/%d, want 87/87 (full overwrite, no merge)", got.Percentage, got.Used)
	}
}

func TestSaveFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "real-usage.json")
	if err := Save(path, Build(5, time.Now(), "Claude Pro")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// The pet UI reads these exact keys; renaming any of them breaks it.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"percentage", "used", "limit", "resetAt", "subscription", "type", "realData", "timestamp", "source"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("snapshot is missing key %q", key)
		}
	}
}
