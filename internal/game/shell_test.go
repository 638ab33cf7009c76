package game

// fakeShell feeds queued commands to every modal it opens and answers
// confirms from a queue.
type fakeShell struct {
	commands []Command
	answers  []bool
	fields   map[FieldID]string
	notices  []string
	prompts  []string
	modals   int
}

func newFakeShell(commands []Command, answers ...bool) *fakeShell {
	return &fakeShell{commands: commands, answers: answers, fields: map[FieldID]string{}}
}

func (s *fakeShell) OpenModal(d Dialog) {
	s.modals++
	d.Open(s)
	for len(s.commands) > 0 {
		cmd := s.commands[0]
		s.commands = s.commands[1:]
		if d.Handle(s, cmd) {
			return
		}
	}
	d.Handle(s, Cancel{})
}

func (s *fakeShell) SetFieldText(field FieldID, text string) { s.fields[field] = text }

func (s *fakeShell) Confirm(prompt string) bool {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return false
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *fakeShell) Notify(message string) { s.notices = append(s.notices, message) }

func (s *fakeShell) lastNotice() string {
	if len(s.notices) == 0 {
		return ""
	}
	return s.notices[len(s.notices)-1]
}
