package game

// FieldID names a text field the shell displays.
type FieldID int

const (
	FieldFunds       FieldID = 104
	FieldCurrentPlan FieldID = 105
	FieldPlanBase    FieldID = 110
	FieldPhoneBase   FieldID = 120
	FieldPhoneName   FieldID = 120
	FieldPlanName    FieldID = 121
	FieldPlanCredit  FieldID = 122
)

// Shell is the UI side of the game. OpenModal must not return until the
// dialog reports it is done.
type Shell interface {
	OpenModal(d Dialog)
	SetFieldText(field FieldID, text string)
	Confirm(prompt string) bool
	Notify(message string)
}

// Dialog is a modal screen driven by Commands.
type Dialog interface {
	Title() string
	// Rows lists the selectable rows; SelectItem indexes into it.
	Rows() []string
	Open(sh Shell)
	// Handle applies cmd and reports whether the dialog should close.
	Handle(sh Shell, cmd Command) bool
}
