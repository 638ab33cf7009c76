// Package cli is a line-oriented terminal shell for the game.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"tabboz/internal/game"
	"tabboz/internal/shell"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

// Terminal asks for one command per line. Row numbers select, "ok" confirms,
// "q" cancels. End of input cancels every open dialog.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	fields map[game.FieldID]string
	eof    bool
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		fields: make(map[game.FieldID]string),
	}
}

func (t *Terminal) OpenModal(d game.Dialog) {
	parent := t.fields
	t.fields = make(map[game.FieldID]string)
	defer func() { t.fields = parent }()

	d.Open(t)
	rows := d.Rows()
	for {
		t.render(d, rows)
		if t.eof {
			d.Handle(t, game.Cancel{})
			return
		}
		line, err := t.readLine("Scelta")
		if err != nil {
			d.Handle(t, game.Cancel{})
			return
		}
		cmd, ok := parseCommand(line, len(rows))
		if !ok {
			warn.Fprintln(t.out, "Scelta non valida.")
			continue
		}
		if d.Handle(t, cmd) {
			return
		}
	}
}

func (t *Terminal) SetFieldText(field game.FieldID, text string) {
	t.fields[field] = text
}

func (t *Terminal) Confirm(prompt string) bool {
	for {
		accent.Fprintln(t.out, prompt)
		line, err := t.readLine("(si/no)")
		if err != nil {
			return false
		}
		switch strings.ToLower(line) {
		case "s", "si", "y", "yes":
			return true
		case "n", "no":
			return false
		}
		warn.Fprintln(t.out, "Rispondi si o no.")
	}
}

func (t *Terminal) Notify(message string) {
	warn.Fprintln(t.out, message)
}

func (t *Terminal) render(d game.Dialog, rows []string) {
	accent.Fprintf(t.out, "\n== %s ==\n", strings.ToUpper(d.Title()))
	for _, l := range shell.Lines(d, t.fields) {
		fmt.Fprintf(t.out, "%-20s %s\n", l.Label+":", l.Text)
	}
	for i, r := range rows {
		neutral.Fprintf(t.out, "  [%d] %s\n", i+1, r)
	}
	success.Fprintln(t.out, "  [ok] conferma   [q] annulla")
}

func (t *Terminal) readLine(label string) (string, error) {
	if t.eof {
		return "", io.EOF
	}
	fmt.Fprintf(t.out, "%s: ", label)
	text, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			t.eof = true
			if strings.TrimSpace(text) != "" {
				return strings.TrimSpace(text), nil
			}
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// parseCommand maps typed input onto the dialog's control codes.
func parseCommand(line string, rows int) (game.Command, bool) {
	code := 0
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "ok", "o":
		code = game.CodeOK
	case "q", "esc", "annulla", "cancel":
		code = game.CodeCancel
	default:
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 {
			return nil, false
		}
		code = game.CodeRowBase + n - 1
	}
	return game.DecodeDialogCommand(code, rows)
}
