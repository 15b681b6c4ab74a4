package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// out receives user-facing command output. Logs go to the logger instead.
var out io.Writer = os.Stdout

// Palette (ANSI 256).
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for the selected or emphasized item.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	StyleDim    = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	StyleLink   = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

func printStatus(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(out, style.Render(icon)+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, styleIconSuccess, format, args...)
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, styleIconInfo, format, args...)
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(out, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// renderStats summarizes one render invocation.
type renderStats struct {
	Kind    string
	Entries int
	Files   int
	Bytes   int
	Cached  bool
}

// printStats prints stats on one line, e.g.
// "  line · 4 entries · 2 files · 18 kB · cached".
func printStats(s renderStats) {
	parts := []string{StyleDim.Render(s.Kind)}
	if s.Entries > 0 {
		parts = append(parts, StyleDim.Render(plural(s.Entries, "entry", "entries")))
	}
	if s.Files > 0 {
		parts = append(parts, StyleDim.Render(plural(s.Files, "file", "files")))
	}
	if s.Bytes > 0 {
		parts = append(parts, StyleDim.Render(humanize.Bytes(uint64(s.Bytes))))
	}
	if s.Cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	fmt.Fprintln(out, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(out, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
