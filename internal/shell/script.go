// Package shell holds UI shells that drive the game without a terminal.
package shell

import (
	"tabboz/internal/game"
)

// Script is a Shell that plays back a fixed list of dialog commands and
// confirm answers, and records everything the game shows. A modal dialog that
// runs out of commands is dismissed with Cancel. Each modal writes to its own
// field set; Fields holds only the outermost one.
type Script struct {
	Commands []game.Command
	Answers  []bool

	Fields  map[game.FieldID]string
	Notices []string
	Prompts []string
	Opened  []string
}

func NewScript(commands []game.Command, answers ...bool) *Script {
	return &Script{
		Commands: commands,
		Answers:  answers,
		Fields:   make(map[game.FieldID]string),
	}
}

func (s *Script) OpenModal(d game.Dialog) {
	s.Opened = append(s.Opened, d.Title())
	parent := s.Fields
	s.Fields = make(map[game.FieldID]string)
	defer func() { s.Fields = parent }()

	d.Open(s)
	for len(s.Commands) > 0 {
		cmd := s.Commands[0]
		s.Commands = s.Commands[1:]
		if d.Handle(s, cmd) {
			return
		}
	}
	d.Handle(s, game.Cancel{})
}

func (s *Script) SetFieldText(field game.FieldID, text string) {
	if s.Fields == nil {
		s.Fields = make(map[game.FieldID]string)
	}
	s.Fields[field] = text
}

func (s *Script) Confirm(prompt string) bool {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return false
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer
}

func (s *Script) Notify(message string) {
	s.Notices = append(s.Notices, message)
}
