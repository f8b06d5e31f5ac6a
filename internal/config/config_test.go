package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StepInterval != time.Second {
		t.Errorf("expected 1s step interval, got %v", cfg.StepInterval)
	}
	if len(cfg.Initial.Array) != DefaultArrayLen {
		t.Errorf("expected %d initial values, got %d", DefaultArrayLen, len(cfg.Initial.Array))
	}
	if cfg.Initial.Target != nil {
		t.Error("default config should not arm a search")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("unexpected frame interval %v", cfg.FrameInterval())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bsviz.yaml")
	data := []byte("step_interval: 1500ms\nfps: 30\ntheme: ocean\ninitial:\n  array: [1, 3, 5]\n  target: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StepInterval != 1500*time.Millisecond {
		t.Errorf("step interval = %v", cfg.StepInterval)
	}
	if cfg.FPS != 30 || cfg.Theme != "ocean" {
		t.Errorf("unexpected fps/theme: %d %s", cfg.FPS, cfg.Theme)
	}
	if cfg.ErrorDuration != DefaultErrorDuration {
		t.Errorf("unset fields should keep defaults, got %v", cfg.ErrorDuration)
	}
	if len(cfg.Initial.Array) != 3 || cfg.Initial.Target == nil || *cfg.Initial.Target != 3 {
		t.Errorf("unexpected initial search: %+v", cfg.Initial)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.StepInterval = 750 * time.Millisecond
	cfg.Initial = InitialConfig{Array: []int{2, 4}, Target: target(4)}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.StepInterval != cfg.StepInterval || *loaded.Initial.Target != 4 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fast step", func(c *Config) { c.StepInterval = time.Millisecond }},
		{"zero blink", func(c *Config) { c.BlinkInterval = 0 }},
		{"zero error", func(c *Config) { c.ErrorDuration = 0 }},
		{"fps too high", func(c *Config) { c.FPS = 1000 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("odds")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Target == nil || *p.Target != 23 {
		t.Errorf("unexpected target %v", p.Target)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreSorted(t *testing.T) {
	for _, name := range ListPresets() {
		arr := Presets[name].Array
		for i := 1; i < len(arr); i++ {
			if arr[i-1] > arr[i] {
				t.Errorf("preset %s is not sorted at %d", name, i)
			}
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("single"); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Initial.Array) != 1 || *cfg.Initial.Target != 42 {
		t.Errorf("unexpected initial search: %+v", cfg.Initial)
	}

	*cfg.Initial.Target = 7
	if *Presets["single"].Target != 42 {
		t.Error("ApplyPreset must copy the preset target")
	}

	if err := cfg.ApplyPreset("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
