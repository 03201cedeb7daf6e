package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lambdakit/lamb/lang"
	"github.com/lambdakit/lamb/log"
)

const prompt = "λ "

// maxScrollback bounds the number of output lines kept in the view.
const maxScrollback = 500

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	tokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	treeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func helpMessage() string {
	return `
: Commands (prefix with a colon):

  :help     Print this cruft
  :clear    Clear screen
  :quit     Exit REPL

Usage:
  Type a lambda term to see its token string and parse tree
  Press Tab to complete a control command
  Use Up/Down arrows for history navigation
  Press Ctrl+C or Ctrl+D to exit
`
}

// Run starts the REPL with history persisted at historyPath.
func Run(ctx context.Context, historyPath string, logger log.Logger) error {
	history := NewHistory(historyPath)

	err := history.Load()
	if err != nil {
		logger.WarnContext(ctx, "could not load history",
			slog.String("path", historyPath),
			slog.Any("error", err),
		)
	}

	logger.TraceContext(ctx, "repl start",
		slog.String("history", historyPath),
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))

	_, err = p.Run()
	if err != nil {
		return err
	}

	return history.Save()
}

// model is the Bubble Tea model for the REPL.
type model struct {
	input      textinput.Model
	history    *History
	historyIdx int
	lines      []string // scrollback
	logger     log.Logger
}

func newModel(history *History, logger log.Logger) model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.TextStyle = inputStyle
	input.Placeholder = `\x.x`
	input.Focus()

	return model{
		input:      input,
		history:    history,
		historyIdx: history.Len(),
		logger:     logger,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		return m.complete(), nil

	case tea.KeyUp:
		return m.navigate(-1), nil

	case tea.KeyDown:
		return m.navigate(+1), nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}
}

func (m model) View() string {
	var sb strings.Builder

	for _, line := range m.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString(m.input.View())
	sb.WriteByte('\n')
	sb.WriteString(hintStyle.Render("(:help for commands)"))
	sb.WriteByte('\n')

	return sb.String()
}

// submit processes the entered line: control commands start with a colon,
// anything else is run through the tokenize/parse pipeline.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	m.history.Add(line)
	m.historyIdx = m.history.Len()
	m.input.Reset()

	m.echo(promptStyle.Render(prompt) + inputStyle.Render(line))

	if strings.HasPrefix(line, ":") {
		return m.runCommand(line)
	}

	m.evaluate(line)

	return m, nil
}

// evaluate runs one term through the pipeline and appends the token
// string and parse tree (or the diagnostic) to the scrollback.
func (m *model) evaluate(line string) {
	tokens, err := lang.Tokenize(line)
	if err != nil {
		m.echo(errorStyle.Render(err.Error()))

		return
	}

	m.echo(tokenStyle.Render(tokens.String()))

	node, err := lang.Parse(tokens)
	if err != nil {
		m.echo(errorStyle.Render(err.Error()))

		return
	}

	var sb strings.Builder
	if err := node.PrintTree(&sb); err != nil {
		m.echo(errorStyle.Render(err.Error()))

		return
	}

	for _, treeLine := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		m.echo(treeStyle.Render(treeLine))
	}
}

func (m model) runCommand(line string) (tea.Model, tea.Cmd) {
	switch strings.TrimPrefix(line, ":") {
	case "help":
		m.echo(helpMessage())

		return m, nil

	case "clear":
		m.lines = nil

		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		hint := ""
		if found := completeCommand(line); len(found) > 0 {
			hint = " (did you mean :" + found[0] + "?)"
		}

		m.echo(errorStyle.Render(
			fmt.Sprintf("%s: %s%s", ErrUnknownCommand, line, hint)))

		return m, nil
	}
}

// complete fills in a control command from its fuzzy-matched prefix.
func (m model) complete() model {
	line := m.input.Value()
	if !strings.HasPrefix(line, ":") {
		return m
	}

	found := completeCommand(line)
	if len(found) == 0 {
		return m
	}

	m.input.SetValue(":" + found[0])
	m.input.CursorEnd()

	return m
}

// navigate moves through history; direction is -1 for older, +1 for newer.
func (m model) navigate(direction int) model {
	idx := m.historyIdx + direction
	if idx < 0 || idx > m.history.Len() {
		return m
	}

	m.historyIdx = idx

	if idx == m.history.Len() {
		m.input.Reset()
	} else {
		m.input.SetValue(m.history.At(idx))
		m.input.CursorEnd()
	}

	return m
}

// echo appends one line to the scrollback, trimming the oldest lines once
// the cap is reached.
func (m *model) echo(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxScrollback {
		m.lines = m.lines[len(m.lines)-maxScrollback:]
	}
}
