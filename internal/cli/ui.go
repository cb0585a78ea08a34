package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
)

// levelStyles tints level names in inspect output. Other levels render as warnings.
var levelStyles = map[roadmap.Level]lipgloss.Style{
	roadmap.Beginner:     lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	roadmap.Intermediate: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	roadmap.Advanced:     lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints graph statistics on a single line, e.g.
// "  4 topics · 3 edges · 1 skipped · cached".
func printStats(w io.Writer, nodes, edges, dropped int, cached bool) {
	parts := []string{
		StyleDim.Render(plural(nodes, "topic")),
		StyleDim.Render(plural(edges, "edge")),
	}
	if dropped > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d skipped", dropped)))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printTopic prints one inspect row: name, colored level and fill, and the
// prerequisite with its resolution.
func printTopic(w io.Writer, rm *roadmap.Roadmap, t roadmap.Topic, fill string) {
	level := string(t.Level)
	if level == "" {
		level = "(none)"
	}
	style, ok := levelStyles[t.Level]
	if !ok {
		style = StyleWarning
	}

	line := StyleValue.Render(t.Name) + "  " + style.Render(level)
	if fill != "" {
		line += " " + StyleDim.Render("["+fill+"]")
	}
	if t.EstTime != "" {
		line += " " + StyleDim.Render(t.EstTime)
	}
	fmt.Fprintln(w, "  "+line)

	if !t.HasPrerequisite() {
		return
	}
	if _, found := rm.Topic(t.Prerequisite); found {
		fmt.Fprintln(w, "    "+StyleDim.Render("after "+iconArrow+" ")+StyleNumber.Render(t.Prerequisite))
		return
	}
	fmt.Fprintln(w, "    "+StyleDim.Render("after "+iconArrow+" ")+StyleWarning.Render(t.Prerequisite+" (not defined, skipped)"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
