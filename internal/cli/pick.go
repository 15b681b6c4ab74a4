package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// KindListModel - Interactive chart kind selection
// =============================================================================

// KindListModel is the bubbletea model for interactive kind selection.
type KindListModel struct {
	Kinds    []chart.Kind
	Cursor   int
	Selected *chart.Kind
}

// NewKindListModel creates a kind list with every chart kind.
func NewKindListModel() KindListModel {
	return KindListModel{Kinds: chart.Kinds()}
}

func (m KindListModel) Init() tea.Cmd {
	return nil
}

func (m KindListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Kinds)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Kinds) - 1
		case "enter":
			k := m.Kinds[m.Cursor]
			m.Selected = &k
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m KindListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart Kind"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, k := range m.Kinds {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s", cursor, k)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("  " + listDimStyle.Render(k.Description()))
		b.WriteString("\n")
	}

	return b.String()
}

// pickChartKind runs the picker and returns the chosen kind.
func pickChartKind() (chart.Kind, error) {
	final, err := tea.NewProgram(NewKindListModel()).Run()
	if err != nil {
		return "", fmt.Errorf("kind picker: %w", err)
	}
	m, ok := final.(KindListModel)
	if !ok || m.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidKind, "no chart kind selected")
	}
	return *m.Selected, nil
}
