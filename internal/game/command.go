package game

// Command is an input delivered to an open dialog.
type Command interface {
	isCommand()
}

type SelectItem struct {
	Index int
}

type Confirm struct{}

type Cancel struct{}

func (SelectItem) isCommand() {}
func (Confirm) isCommand()    {}
func (Cancel) isCommand()     {}

// Control codes of the dialog templates.
const (
	CodeOK       = 1
	CodeCancel   = 2
	CodeRowBase  = 110
	CodeMenuExit = 150
)

// DecodeDialogCommand turns a control code from a dialog with the given number
// of selectable rows into a Command. Codes outside the dialog's range report
// false and must be ignored by the caller.
func DecodeDialogCommand(code, rows int) (Command, bool) {
	switch {
	case code == CodeOK:
		return Confirm{}, true
	case code == CodeCancel:
		return Cancel{}, true
	case code >= CodeRowBase && code < CodeRowBase+rows:
		return SelectItem{Index: code - CodeRowBase}, true
	default:
		return nil, false
	}
}

type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuBuyPhone
	MenuSellPhone
	MenuSubscribe
	MenuClose
)

func (a MenuAction) String() string {
	switch a {
	case MenuBuyPhone:
		return "buy_phone"
	case MenuSellPhone:
		return "sell_phone"
	case MenuSubscribe:
		return "subscribe"
	case MenuClose:
		return "close"
	default:
		return "none"
	}
}

func DecodeMenuCommand(code int) MenuAction {
	switch code {
	case CodeRowBase:
		return MenuBuyPhone
	case CodeRowBase + 1:
		return MenuSellPhone
	case CodeRowBase + 2:
		return MenuSubscribe
	case CodeMenuExit, CodeOK, CodeCancel:
		return MenuClose
	default:
		return MenuNone
	}
}
