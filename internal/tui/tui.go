// Package tui is a full-screen terminal shell built on bubbletea.
//
// Each dialog screen is a short-lived tea.Program that quits as soon as the
// player issues a command. The command is applied to the game outside the
// program, so nested dialogs never share a running program.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabboz/internal/game"
	"tabboz/internal/shell"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(20)
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
	No      key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "su")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "giù")),
	Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("invio", "scegli")),
	Confirm: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "ok")),
	Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "annulla")),
	Yes:     key.NewBinding(key.WithKeys("s", "y", "enter"), key.WithHelp("s", "si")),
	No:      key.NewBinding(key.WithKeys("n", "esc", "q", "ctrl+c"), key.WithHelp("n", "no")),
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

// Runner runs a model to completion and returns its final state.
type Runner func(m tea.Model) (tea.Model, error)

type Shell struct {
	run    Runner
	fields map[game.FieldID]string
}

// New returns a shell whose programs read keys from in and draw to out.
func New(in io.Reader, out io.Writer) *Shell {
	return NewWithRunner(func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	})
}

func NewWithRunner(run Runner) *Shell {
	return &Shell{run: run, fields: make(map[game.FieldID]string)}
}

func (s *Shell) OpenModal(d game.Dialog) {
	parent := s.fields
	s.fields = make(map[game.FieldID]string)
	defer func() { s.fields = parent }()

	d.Open(s)
	rows := d.Rows()
	selected := 0
	for {
		m := dialogModel{
			title:    d.Title(),
			lines:    shell.Lines(d, s.fields),
			rows:     rows,
			cursor:   selected,
			selected: selected,
		}
		var cmd game.Command = game.Cancel{}
		if final, err := s.run(m); err == nil {
			if dm, ok := final.(dialogModel); ok && dm.cmd != nil {
				cmd = dm.cmd
			}
		}
		if sel, ok := cmd.(game.SelectItem); ok {
			selected = sel.Index
		}
		if d.Handle(s, cmd) {
			return
		}
		if _, ok := cmd.(game.Cancel); ok {
			return
		}
	}
}

func (s *Shell) SetFieldText(field game.FieldID, text string) {
	s.fields[field] = text
}

func (s *Shell) Confirm(prompt string) bool {
	final, err := s.run(confirmModel{prompt: prompt})
	if err != nil {
		return false
	}
	cm, ok := final.(confirmModel)
	return ok && cm.answer
}

func (s *Shell) Notify(message string) {
	_, _ = s.run(noticeModel{message: message})
}

type dialogModel struct {
	title    string
	lines    []shell.Line
	rows     []string
	cursor   int
	selected int
	cmd      game.Command
}

func (m dialogModel) Init() tea.Cmd { return nil }

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(m.rows)
	switch {
	case key.Matches(k, keys.Up):
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case key.Matches(k, keys.Down):
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case key.Matches(k, keys.Select):
		if n > 0 {
			m.cmd = game.SelectItem{Index: m.cursor}
			return m, tea.Quit
		}
	case key.Matches(k, keys.Confirm):
		m.cmd = game.Confirm{}
		return m, tea.Quit
	case key.Matches(k, keys.Cancel):
		m.cmd = game.Cancel{}
		return m, tea.Quit
	}
	return m, nil
}

func (m dialogModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.title)))
	b.WriteString("\n\n")
	for _, l := range m.lines {
		b.WriteString(labelStyle.Render(l.Label) + l.Text + "\n")
	}
	if len(m.lines) > 0 {
		b.WriteString("\n")
	}
	for i, r := range m.rows {
		mark := "  "
		if i == m.selected {
			mark = "* "
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+mark+r) + "\n")
			continue
		}
		b.WriteString(rowStyle.Render("  "+mark+r) + "\n")
	}
	b.WriteString("\n" + helpLine(keys.Up, keys.Down, keys.Select, keys.Confirm, keys.Cancel))
	return boxStyle.Render(b.String()) + "\n"
}

type confirmModel struct {
	prompt string
	answer bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.Yes):
		m.answer = true
		return m, tea.Quit
	case key.Matches(k, keys.No):
		m.answer = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", m.prompt, helpLine(keys.Yes, keys.No))) + "\n"
}

type noticeModel struct {
	message string
}

func (m noticeModel) Init() tea.Cmd { return nil }

func (m noticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m noticeModel) View() string {
	return boxStyle.Render(noticeStyle.Render(m.message)+"\n\n"+helpStyle.Render("premi un tasto")) + "\n"
}
