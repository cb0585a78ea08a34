package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/roadmap/pkg/config"
	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/pipeline"
	"github.com/matzehuels/roadmap/pkg/render"
)

const sampleRoadmap = `{
	"Go Basics": {"level": "beginner", "est_time": "1 week"},
	"Concurrency": {"level": "advanced", "prerequisite": "Go Basics"},
	"Testing": {"level": "intermediate", "prerequisite": "Tooling"}
}`

// TestMain keeps the image cache out of the user's home directory.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "roadmap-cache")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CACHE_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type harness struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	logs   bytes.Buffer
}

func (h *harness) execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(&h.logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&h.stdout)
	root.SetErr(&h.stderr)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	var h harness
	if err := h.execute(t, "run"); err != nil {
		t.Fatalf("run without args error = %v, want nil", err)
	}
	if got := strings.TrimSpace(h.stdout.String()); got != runUsage {
		t.Errorf("stdout = %q, want %q", got, runUsage)
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	var h harness
	if err := h.execute(t, "run", "a.json", "b.png", "c.png"); err == nil {
		t.Fatal("run with three args should fail")
	}
}

func TestRun_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "go.json", sampleRoadmap)
	out := filepath.Join(dir, "go.dot")

	var h harness
	if err := h.execute(t, "run", in, out); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if !strings.Contains(h.stdout.String(), out) {
		t.Errorf("confirmation %q should name %s", h.stdout.String(), out)
	}
	if !strings.Contains(h.stdout.String(), "3 topics · 1 edge · 1 skipped") {
		t.Errorf("stats line missing from %q", h.stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	for _, want := range []string{
		`n0 -> n1 [arrowsize=0.7];`,
		`fillcolor="lightpink"`,
		`fillcolor="lightblue"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(string(data), "->"); n != 1 {
		t.Errorf("output has %d edges, want 1; undefined prerequisites draw nothing", n)
	}
}

func TestRun_PNG(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "go.json", sampleRoadmap)
	out := filepath.Join(dir, "go.png")

	var h harness
	if err := h.execute(t, "run", in, out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRun_CachesImages(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	in := writeFile(t, dir, "go.json", sampleRoadmap)

	var first, second, bypass harness
	if err := first.execute(t, "run", in, filepath.Join(dir, "a.png")); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := second.execute(t, "run", in, filepath.Join(dir, "b.png")); err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if err := bypass.execute(t, "run", in, filepath.Join(dir, "c.png"), "--no-cache"); err != nil {
		t.Fatalf("--no-cache run error: %v", err)
	}

	if strings.Contains(first.stdout.String(), "cached") {
		t.Error("first run should render")
	}
	if !strings.Contains(second.stdout.String(), "cached") {
		t.Errorf("second run should report a cache hit, got %q", second.stdout.String())
	}
	if strings.Contains(bypass.stdout.String(), "cached") {
		t.Error("--no-cache should bypass the cache")
	}
}

func TestCacheCommands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)
	want := filepath.Join(home, "roadmap")

	var path harness
	if err := path.execute(t, "cache", "path"); err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got := strings.TrimSpace(path.stdout.String()); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}

	var empty harness
	if err := empty.execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(empty.stdout.String(), "Cache is empty") {
		t.Errorf("cache clear on empty cache = %q", empty.stdout.String())
	}

	in := writeFile(t, t.TempDir(), "go.json", `{"A": {}}`)
	var run harness
	if err := run.execute(t, "run", in, filepath.Join(t.TempDir(), "a.svg")); err != nil {
		t.Fatalf("run error: %v", err)
	}

	var clear harness
	if err := clear.execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(clear.stdout.String(), "Cleared 1 cached image") {
		t.Errorf("cache clear = %q", clear.stdout.String())
	}
}

func TestRun_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "go.json", `{"A": {}}`)
	t.Chdir(dir)

	var h harness
	if err := h.execute(t, "run", in, "--format", "dot"); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "roadmap.dot")); err != nil {
		t.Errorf("default output not written: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	dup := writeFile(t, dir, "dup.json", `{"A": {}, "A": {"level": "advanced"}}`)
	bad := writeFile(t, dir, "bad.json", `{"A": `)
	good := writeFile(t, dir, "good.json", `{"A": {}}`)

	tests := []struct {
		name string
		args []string
		code apperr.Code
	}{
		{"missing input", []string{"run", filepath.Join(dir, "missing.json")}, apperr.ErrCodeFileNotFound},
		{"malformed input", []string{"run", bad, filepath.Join(dir, "out.dot")}, apperr.ErrCodeParse},
		{"strict duplicates", []string{"run", dup, filepath.Join(dir, "out.dot"), "--strict"}, apperr.ErrCodeDuplicateTopic},
		{"bad format flag", []string{"run", good, "--format", "pdf"}, apperr.ErrCodeInvalidFormat},
		{"missing config", []string{"run", good, "--config", filepath.Join(dir, "nope.toml")}, apperr.ErrCodeFileNotFound},
		{"missing output dir", []string{"run", good, filepath.Join(dir, "nope", "out.dot")}, apperr.ErrCodeRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h harness
			err := h.execute(t, tt.args...)
			if !apperr.Is(err, tt.code) {
				t.Errorf("run code = %v (%v), want %v", apperr.GetCode(err), err, tt.code)
			}
		})
	}
}

func TestRun_DuplicateWarning(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "dup.json", `{"A": {}, "A": {"level": "advanced"}}`)

	var h harness
	if err := h.execute(t, "run", in, filepath.Join(dir, "out.dot")); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(h.logs.String(), "topic defined more than once") {
		t.Errorf("expected duplicate warning in logs, got %q", h.logs.String())
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg, err := config.Decode(`
[colors]
beginner = "#fff4b3"

[output]
format = "svg"
detailed = true
`)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		cfg         *config.Config
		output      string
		opts        runOpts
		detailedSet bool
		want        pipeline.Options
	}{
		{
			name: "no config",
			opts: runOpts{strict: true},
			want: pipeline.Options{Input: "in.json", Strict: true},
		},
		{
			name: "flag format",
			opts: runOpts{format: "DOT"},
			want: pipeline.Options{Input: "in.json", Format: render.FormatDOT},
		},
		{
			name: "config supplies format and detailed",
			cfg:  cfg,
			want: pipeline.Options{Input: "in.json", Format: render.FormatSVG, Detailed: true},
		},
		{
			name:   "output extension beats config format",
			cfg:    cfg,
			output: "map.png",
			want:   pipeline.Options{Input: "in.json", Output: "map.png", Detailed: true},
		},
		{
			name:        "explicit detailed flag beats config",
			cfg:         cfg,
			opts:        runOpts{format: "json"},
			detailedSet: true,
			want:        pipeline.Options{Input: "in.json", Format: render.FormatJSON},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pipelineOptions(tt.cfg, "in.json", tt.output, tt.opts, tt.detailedSet)
			if err != nil {
				t.Fatalf("pipelineOptions() error: %v", err)
			}
			if got.Theme == nil {
				t.Fatal("pipelineOptions() should always set a theme")
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(pipeline.Options{}, "Theme", "Logger")); diff != "" {
				t.Errorf("pipelineOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("config colors reach the theme", func(t *testing.T) {
		got, _ := pipelineOptions(cfg, "in.json", "", runOpts{}, false)
		if c := got.Theme.Colors.Color("beginner"); c != "#fff4b3" {
			t.Errorf("beginner color = %q, want %q", c, "#fff4b3")
		}
		if c := got.Theme.Colors.Color("advanced"); c != graph.DefaultStylePolicy().Color("advanced") {
			t.Errorf("advanced color = %q, want default", c)
		}
	})
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "go.json", `{
		"Go Basics": {"level": "beginner"},
		"Generics": {"level": "guru", "prerequisite": "Go Basics"},
		"Testing": {"prerequisite": "Tooling"},
		"Go Basics": {"level": "beginner", "est_time": "1 week"}
	}`)

	var h harness
	if err := h.execute(t, "inspect", in); err != nil {
		t.Fatalf("inspect error: %v", err)
	}

	out := h.stdout.String()
	for _, want := range []string{
		"Go Basics",
		"[lightyellow]",
		"1 week",
		"guru",
		"[white]",
		"Tooling (not defined, skipped)",
		`"Go Basics" is defined more than once`,
		"1 topic with an unrecognized level will be filled white",
		"3 topics · 1 edge · 1 skipped",
		"roadmap run " + in,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}

	if matches, _ := filepath.Glob(filepath.Join(dir, "*.png")); len(matches) != 0 {
		t.Errorf("inspect should not render, found %v", matches)
	}
}

func TestInspect_Empty(t *testing.T) {
	in := writeFile(t, t.TempDir(), "empty.json", `{}`)

	var h harness
	if err := h.execute(t, "inspect", in); err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "No topics") {
		t.Errorf("inspect output = %q", h.stdout.String())
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var h harness
			if err := h.execute(t, "completion", shell); err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(h.stdout.String(), "roadmap") {
				t.Errorf("completion %s output does not mention roadmap", shell)
			}
		})
	}

	var h harness
	if err := h.execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion with unknown shell should fail")
	}
}

func TestVersion(t *testing.T) {
	var h harness
	if err := h.execute(t, "--version"); err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.HasPrefix(h.stdout.String(), "roadmap version ") {
		t.Errorf("--version output = %q", h.stdout.String())
	}
}

func TestRun_BundledExamples(t *testing.T) {
	out := filepath.Join(t.TempDir(), "golang.dot")

	var h harness
	err := h.execute(t, "run", filepath.Join("..", "..", "examples", "golang.json"), out,
		"--config", filepath.Join("..", "..", "examples", "theme.toml"))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	for _, want := range []string{
		`rankdir="LR";`,
		`fillcolor="#cfe8ff"`,
		`label="Goroutines\nintermediate · 1 week"`,
		`n4 -> n5`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(dot, "->"); n != 7 {
		t.Errorf("output has %d edges, want 7", n)
	}

	var yaml harness
	if err := yaml.execute(t, "inspect", filepath.Join("..", "..", "examples", "golang.yaml")); err != nil {
		t.Fatalf("inspect yaml error: %v", err)
	}
	if !strings.Contains(yaml.stdout.String(), "5 topics · 4 edges") {
		t.Errorf("inspect yaml = %q", yaml.stdout.String())
	}
}
