package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goblinwars/internal/combat"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	elfStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	goblinStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	notesStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Italic(true)
)

type linkClosedMsg struct{}

// TeaModel is the bubbletea viewer. It only reads from the link.
type TeaModel struct {
	title   string
	updates <-chan Update
	frame   Frame
	height  int
	closed  bool
}

func NewTeaModel(title string, updates <-chan Update) TeaModel {
	return TeaModel{title: title, updates: updates}
}

func (m TeaModel) Frame() Frame { return m.frame }

func waitForUpdate(updates <-chan Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return linkClosedMsg{}
		}
		return u
	}
}

func (m TeaModel) Init() tea.Cmd { return waitForUpdate(m.updates) }

func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.frame.Scroll(-1)
		case "down", "j":
			m.frame.Scroll(1)
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case Update:
		m.frame = m.frame.Next(msg)
		return m, waitForUpdate(m.updates)
	case linkClosedMsg:
		m.closed = true
	}
	return m, nil
}

func (m TeaModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s  round %d", m.title, m.frame.Round)))
	sb.WriteString("\n\n")

	height := len(m.frame.Rows)
	if m.height > 0 {
		height = max(m.height-5, 1)
	}
	for _, row := range m.frame.Visible(height) {
		for _, c := range row.Cells {
			sb.WriteString(cellStyle(c).Render(string(c.Glyph)))
		}
		if row.Notes != "" {
			sb.WriteString("   ")
			sb.WriteString(notesStyle.Render(row.Notes))
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	if m.frame.Status != "" {
		sb.WriteString(statusStyle.Render(m.frame.Status))
		sb.WriteByte('\n')
	}
	if m.closed && !m.frame.Done {
		sb.WriteString(statusStyle.Render("simulation stopped"))
		sb.WriteByte('\n')
	}
	sb.WriteString("Press q to quit.\n")
	return sb.String()
}

func cellStyle(c Cell) lipgloss.Style {
	switch {
	case c.Sprite && c.Species == combat.Elf:
		return elfStyle
	case c.Sprite:
		return goblinStyle
	case c.Glyph == '#':
		return wallStyle
	}
	return lipgloss.NewStyle()
}
