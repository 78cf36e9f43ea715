package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestTimingDurations(t *testing.T) {
	timing := Default().Timing
	if got := timing.Initial(); got != 700*time.Millisecond {
		t.Errorf("Initial() = %v, expected 700ms", got)
	}
	if got := timing.Step(); got != 100*time.Millisecond {
		t.Errorf("Step() = %v, expected 100ms", got)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("timing:\n  initial_interval: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Timing.InitialInterval != 0.5 {
		t.Errorf("InitialInterval = %v, expected 0.5", cfg.Timing.InitialInterval)
	}
	if cfg.Timing.IntervalStep != 0.1 {
		t.Errorf("IntervalStep should keep its default, got %v", cfg.Timing.IntervalStep)
	}
	if cfg.Window.Title != "Snake" {
		t.Errorf("Window.Title should keep its default, got %q", cfg.Window.Title)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero interval", "timing:\n  initial_interval: 0\n", "initial_interval"},
		{"negative step", "timing:\n  interval_step: -0.1\n", "interval_step"},
		{"zero window", "window:\n  width: 0\n", "window size"},
		{"zero fps", "window:\n  fps: 0\n", "fps"},
		{"bad fovy", "camera:\n  fovy: 200\n", "fovy"},
		{"bad color", "colors:\n  head: \"green\"\n", "invalid color"},
		{"short vector", "camera:\n  position: [1, 2]\n", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		in       string
		expected RGBA
		wantErr  bool
	}{
		{"#ff0000", RGBA{R: 255, A: 255}, false},
		{"00cc00", RGBA{G: 204, A: 255}, false},
		{"#01020304", RGBA{R: 1, G: 2, B: 3, A: 4}, false},
		{"#fff", RGBA{}, true},
		{"#zzzzzz", RGBA{}, true},
	}

	for _, tc := range tests {
		got, err := ParseRGBA(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRGBA(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseRGBA(%q) = %+v, expected %+v", tc.in, got, tc.expected)
		}
	}
}

func TestRGBAMarshal(t *testing.T) {
	out, err := yaml.Marshal(struct {
		C RGBA `yaml:"c"`
	}{C: RGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "#abcdefff") {
		t.Errorf("unexpected YAML: %s", out)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: \"Cube Snake\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Window.Title != "Cube Snake" {
		t.Errorf("Title = %q, expected %q", cfg.Window.Title, "Cube Snake")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}
