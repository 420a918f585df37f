package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// LayerListModel is the bubbletea model for the interactive layer browser.
type LayerListModel struct {
	Summaries []layerSummary
	Cursor    int
	Height    int
	Offset    int
}

// NewLayerListModel creates a new layer list model.
func NewLayerListModel(summaries []layerSummary) LayerListModel {
	return LayerListModel{
		Summaries: summaries,
		Cursor:    0,
		Height:    15,
		Offset:    0,
	}
}

func (m LayerListModel) Init() tea.Cmd {
	return nil
}

func (m LayerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Summaries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LayerListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scene Layers"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Summaries) {
		end = len(m.Summaries)
	}

	b.WriteString(layerTable(m.Summaries[m.Offset:end], m.Cursor-m.Offset))
	b.WriteString("\n")

	if len(m.Summaries) > 0 {
		s := m.Summaries[m.Cursor]
		b.WriteString(listDimStyle.Render(s.Name+" · "+s.Kind+" · "+s.Size) + "\n")
	}
	return b.String()
}

// browseLayers runs the interactive layer browser until the user quits.
func browseLayers(summaries []layerSummary) error {
	p := tea.NewProgram(NewLayerListModel(summaries))
	_, err := p.Run()
	return err
}
