package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode("")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	got := cfg.Theme()
	want := graph.DefaultTheme()
	if diff := cmp.Diff(want.Node, got.Node); diff != "" {
		t.Errorf("Node attrs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Layout, got.Layout); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}
	if got.Colors.Color(roadmap.Advanced) != "lightpink" {
		t.Errorf("Color(advanced) = %q, want lightpink", got.Colors.Color(roadmap.Advanced))
	}
}

func TestDecode_Overrides(t *testing.T) {
	cfg, err := Decode(`
[graph]
rankdir = "LR"

[node]
fontsize = 14
width = 3.0

[edge]
arrowsize = 1.0

[colors]
advanced = "#f4a6a6"
default = "gray95"

[output]
format = "svg"
detailed = true
`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	theme := cfg.Theme()
	if theme.Layout.RankDir != "LR" || theme.Layout.Splines != "ortho" {
		t.Errorf("Layout = %+v, want LR/ortho", theme.Layout)
	}
	wantNode := graph.NodeAttrs{Shape: "box", Style: "rounded,filled", FontSize: 14, Width: 3, Height: 0.8}
	if diff := cmp.Diff(wantNode, theme.Node); diff != "" {
		t.Errorf("Node attrs mismatch (-want +got):\n%s", diff)
	}
	if theme.Edge.ArrowSize != 1.0 {
		t.Errorf("ArrowSize = %v, want 1.0", theme.Edge.ArrowSize)
	}

	colors := map[roadmap.Level]string{
		roadmap.Beginner:     "lightyellow",
		roadmap.Intermediate: "lightblue",
		roadmap.Advanced:     "#f4a6a6",
		"expert":             "gray95",
	}
	for level, want := range colors {
		if got := theme.Colors.Color(level); got != want {
			t.Errorf("Color(%q) = %q, want %q", level, got, want)
		}
	}

	if cfg.Output.Format != "svg" || !cfg.Output.Detailed {
		t.Errorf("Output = %+v, want svg/detailed", cfg.Output)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", "[node\nshape = "},
		{"unknown key", "[node]\ncolour = \"red\"\n"},
		{"unknown table", "[legend]\nshow = true\n"},
		{"negative size", "[node]\nwidth = -1.0\n"},
		{"bad format", "[output]\nformat = \"pdf\"\n"},
		{"wrong type", "[node]\nfontsize = \"big\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if err == nil {
				t.Fatal("Decode() expected error")
			}
			if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
				t.Errorf("Decode() code = %v, want %v", apperr.GetCode(err), apperr.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.toml")
	if err := os.WriteFile(path, []byte("[colors]\nbeginner = \"khaki\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.Theme().Colors.Color(roadmap.Beginner); got != "khaki" {
		t.Errorf("Color(beginner) = %q, want khaki", got)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !apperr.Is(err, apperr.ErrCodeFileNotFound) {
		t.Errorf("Load() code = %v, want %v", apperr.GetCode(err), apperr.ErrCodeFileNotFound)
	}
}

func TestNilConfigTheme(t *testing.T) {
	var cfg *Config
	if diff := cmp.Diff(graph.DefaultTheme().Node, cfg.Theme().Node); diff != "" {
		t.Errorf("nil config theme mismatch (-want +got):\n%s", diff)
	}
}
