// tui.go
// Package tui runs the interactive menu mode: a numbered list of cipher
// demonstrations driven by a bubbletea program.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drewwalton19216801/goingsecure/internal/demo"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	menuStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const menu = `[1] Caesar cipher
[2] Repeating-key XOR
[3] ASCII <-> binary
[4] DES-style block cipher
[0] Exit`

type model struct {
	input    textinput.Model
	messages []string
}

// Run starts the menu loop and blocks until the user exits.
func Run() error {
	m := &model{}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *model) Init() tea.Cmd {
	m.input = textinput.New()
	m.input.Placeholder = "Pick a demonstration"
	m.input.Focus()
	m.input.CharLimit = 8
	m.input.Width = 30
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			choice := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m.handleChoice(choice)
		default:
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	default:
		return m, nil
	}
}

func (m *model) View() string {
	s := strings.Builder{}
	s.WriteString(titleStyle.Render("GoingSecure cipher laboratory"))
	s.WriteString("\n\n")
	s.WriteString(menuStyle.Render(menu))
	s.WriteString("\n\n")
	for _, msg := range m.messages {
		s.WriteString(msg + "\n")
	}
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	return s.String()
}

func (m *model) handleChoice(choice string) (tea.Model, tea.Cmd) {
	switch choice {
	case "":
		return m, nil
	case "1":
		m.messages = demo.Caesar()
	case "2":
		m.messages = demo.XOR()
	case "3":
		m.messages = demo.AsciiBinary()
	case "4":
		m.messages = demo.DES()
	case "0":
		return m, tea.Quit
	default:
		m.messages = []string{errStyle.Render(fmt.Sprintf("Unknown choice %q. Pick 0-4.", choice))}
	}
	return m, nil
}
