package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileAppliesPartialOverrides(t *testing.T) {
	origRun := Run
	origInput := Input
	t.Cleanup(func() {
		Run = origRun
		Input = origInput
	})

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("run:\n  minspeed: 12\n  lanecount: 5\ninput:\n  bufferwindow: 0.4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if Run.MinSpeed != 12 {
		t.Errorf("MinSpeed = %.1f, want 12", Run.MinSpeed)
	}
	if Run.LaneCount != 5 {
		t.Errorf("LaneCount = %d, want 5", Run.LaneCount)
	}
	if Input.BufferWindow != 0.4 {
		t.Errorf("BufferWindow = %.2f, want 0.4", Input.BufferWindow)
	}

	// Untouched fields keep their defaults.
	if Run.MaxSpeed != origRun.MaxSpeed {
		t.Errorf("MaxSpeed changed to %.1f without an override", Run.MaxSpeed)
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("run: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err == nil {
		t.Error("malformed yaml did not error")
	}
}
