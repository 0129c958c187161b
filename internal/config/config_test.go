package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/lensdemo"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lensdemo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Output: OutputConfig{Dir: "outputs", DiagramsDir: "diagrams"},
		Scene:  SceneConfig{Width: 400, Height: 250, FocusDepth: 1.0},
		Photo: PhotoConfig{
			Path:          filepath.Join("assets", "photo.jpg"),
			TargetWidth:   400,
			Interpolation: "bicubic",
			FocusDepth:    1.5,
		},
		Log: LogConfig{Mode: "debug", Level: "info"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Default() (-want +got):\n%s", diff)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LENSDEMO_OUTPUT_DIR", "/tmp/lens-out")
	t.Setenv("LENSDEMO_SCENE_FOCUS_DEPTH", "2.5")
	t.Setenv("LENSDEMO_PHOTO_INTERPOLATION", "nearest")

	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "/tmp/lens-out" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Scene.FocusDepth != 2.5 {
		t.Errorf("Scene.FocusDepth = %v, want 2.5", cfg.Scene.FocusDepth)
	}
	if cfg.Photo.Interpolation != "nearest" {
		t.Errorf("Photo.Interpolation = %q", cfg.Photo.Interpolation)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: out
scene:
  width: 120
photo:
  path: pics/cat.png
  interpolation: CatmullRom
bands:
  - label: sharp
    limit: 0.25
    relative: true
  - label: soft
    limit: .inf
    sigma: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	demo, err := cfg.Demo()
	if err != nil {
		t.Fatal(err)
	}
	want := lensdemo.DemoConfig{
		OutputDir:     "out",
		PhotoPath:     "pics/cat.png",
		SceneWidth:    120,
		SceneHeight:   250,
		SceneFocus:    1.0,
		PhotoWidth:    400,
		PhotoFocus:    1.5,
		Interpolation: lensdemo.CatmullRom,
		Bands: []lensdemo.Band{
			{Label: "sharp", Limit: 0.25, Relative: true},
			{Label: "soft", Limit: math.Inf(1), Sigma: 2},
		},
	}
	if diff := cmp.Diff(want, demo); diff != "" {
		t.Errorf("Demo() (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad interpolation", "photo:\n  interpolation: lanczos\n"},
		{"zero width", "scene:\n  width: 0\n"},
		{"empty output", "output:\n  dir: \"\"\n"},
		{"nan sigma", "bands:\n  - label: x\n    sigma: .nan\n"},
		{"not yaml", "output: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestNew(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Setenv("LENSDEMO_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
		cfg, err := New()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Output.Dir != "outputs" {
			t.Errorf("Output.Dir = %q, want outputs", cfg.Output.Dir)
		}
	})

	t.Run("reads LENSDEMO_CONFIG", func(t *testing.T) {
		t.Setenv("LENSDEMO_CONFIG", writeConfig(t, "output:\n  diagrams_dir: figs\n"))
		cfg, err := New()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Output.DiagramsDir != "figs" {
			t.Errorf("Output.DiagramsDir = %q, want figs", cfg.Output.DiagramsDir)
		}
	})
}

func TestPath(t *testing.T) {
	t.Setenv("LENSDEMO_CONFIG", "")
	if got := Path(); got != DefaultPath {
		t.Errorf("Path() = %q, want %q", got, DefaultPath)
	}
	t.Setenv("LENSDEMO_CONFIG", "/etc/lensdemo.yaml")
	if got := Path(); got != "/etc/lensdemo.yaml" {
		t.Errorf("Path() = %q", got)
	}
}
