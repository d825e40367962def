package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Dots.Count != 30 {
		t.Errorf("dots.count = %d, want 30", cfg.Dots.Count)
	}
	if cfg.Arena.Damping != 0.85 {
		t.Errorf("arena.damping = %v, want 0.85", cfg.Arena.Damping)
	}
	if cfg.Limits.SpeedScale.Min != 0.1 || cfg.Limits.ForceScale.Min != 0.1 {
		t.Errorf("scale minimums = %v/%v, want 0.1",
			cfg.Limits.SpeedScale.Min, cfg.Limits.ForceScale.Min)
	}

	// 800/2 - 40 and 600/2 - 40
	if cfg.Derived.BoundX != 360 || cfg.Derived.BoundY != 260 {
		t.Errorf("bounds = (%v, %v), want (360, 260)", cfg.Derived.BoundX, cfg.Derived.BoundY)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("dots:\n  count: 12\nfluid:\n  target_density: 0.2\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Dots.Count != 12 {
		t.Errorf("dots.count = %d, want 12", cfg.Dots.Count)
	}
	if cfg.Fluid.TargetDensity != 0.2 {
		t.Errorf("fluid.target_density = %v, want 0.2", cfg.Fluid.TargetDensity)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Fluid.PressureMultiplier != 10 {
		t.Errorf("fluid.pressure_multiplier = %v, want default 10", cfg.Fluid.PressureMultiplier)
	}
	if cfg.Dots.Layout != "ring" {
		t.Errorf("dots.layout = %q, want default ring", cfg.Dots.Layout)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"zero dots", "dots:\n  count: 0\n"},
		{"unknown layout", "dots:\n  layout: spiral\n"},
		{"amplifying damping", "arena:\n  damping: 1.2\n"},
		{"zero radius", "fluid:\n  smoothing_radius: 0\n"},
		{"non-positive scale floor", "limits:\n  speed_scale: {min: 0, max: 10, step: 0.1}\n"},
		{"nan speed scale", "scales:\n  speed_scale: .nan\n"},
		{"nan force scale", "scales:\n  force_scale: .nan\n"},
		{"speed scale below floor", "scales:\n  speed_scale: 0.01\n"},
		{"infinite zoom", "scales:\n  zoom: .inf\n"},
		{"negative target density", "fluid:\n  target_density: -0.5\n"},
		{"nan pressure multiplier", "fluid:\n  pressure_multiplier: .nan\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Fluid.PressureMultiplier = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after WriteYAML failed: %v", err)
	}
	if loaded.Fluid.PressureMultiplier != 42 {
		t.Errorf("pressure_multiplier = %v, want 42", loaded.Fluid.PressureMultiplier)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}
