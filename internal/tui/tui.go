// Package tui implements the full-screen interactive mode: a styled
// header, a scrolling transcript of calculations and command output,
// and a textinput prompt. All calculator behavior lives in the
// session dispatcher; this package only renders.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/codefionn/rechner/internal/session"
)

type lineKind int

const (
	lineEcho lineKind = iota
	lineResult
	lineError
	lineSystem
	lineHelp
)

type line struct {
	kind lineKind
	text string
}

// Model is the bubbletea model for the calculator.
type Model struct {
	sess  *session.Session
	input textinput.Model

	lines  []line
	width  int
	height int

	quitting bool
}

// New creates the TUI model around an already-loaded session.
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an expression, or 'help'"
	ti.Prompt = "> "
	ti.Focus()

	m := Model{sess: sess, input: ti}
	if n := sess.LoadedEntries(); n > 0 {
		m.lines = append(m.lines, line{
			kind: lineSystem,
			text: fmt.Sprintf("Loaded %d entries from history", n),
		})
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if value == "" {
		return m, nil
	}

	m.lines = append(m.lines, line{kind: lineEcho, text: "> " + value})

	reply := m.sess.Dispatch(value)
	m.lines = append(m.lines, replyLines(value, reply)...)

	if reply.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// replyLines converts a dispatch reply into styled transcript lines.
func replyLines(input string, reply session.Reply) []line {
	kind := lineSystem
	switch {
	case reply.IsError:
		kind = lineError
	case strings.HasPrefix(reply.Text, "= "):
		kind = lineResult
	case input == "help":
		kind = lineHelp
	}

	var lines []line
	for _, text := range strings.Split(reply.Text, "\n") {
		lines = append(lines, line{kind: kind, text: text})
	}
	return lines
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	header := headerBoxStyle.Render(headerStyle.Render("rechner — CLI Calculator"))
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(systemStyle.Render("Type 'help' for available commands"))
	sb.WriteString("\n\n")

	for _, l := range m.visibleLines() {
		sb.WriteString(m.renderLine(l))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(footerStyle.Render("enter: evaluate • ctrl+c: quit"))

	return sb.String()
}

// visibleLines trims the transcript to what fits above the prompt.
func (m Model) visibleLines() []line {
	if m.height == 0 {
		return m.lines
	}
	// Header block, blank separators, input and footer.
	reserved := 8
	max := m.height - reserved
	if max < 1 {
		max = 1
	}
	if len(m.lines) <= max {
		return m.lines
	}
	return m.lines[len(m.lines)-max:]
}

func (m Model) renderLine(l line) string {
	text := l.text
	if m.width > 0 {
		text = wordwrap.String(text, m.width-2)
	}

	var style lipgloss.Style
	switch l.kind {
	case lineEcho:
		style = echoStyle
	case lineResult:
		style = resultStyle
	case lineError:
		style = errorStyle
	case lineHelp:
		style = helpStyle
	default:
		style = systemStyle
	}
	return style.Render(text)
}
