package game

import "fmt"

// PurchaseFlow is the "buy a phone" dialog. The first row starts selected.
type PurchaseFlow struct {
	ledger  *Ledger
	catalog []Phone
	chosen  int
	state   FlowState
	err     error
}

func NewPurchaseFlow(ledger *Ledger, catalog []Phone) *PurchaseFlow {
	if len(catalog) == 0 {
		panic("game: purchase flow needs at least one phone")
	}
	return &PurchaseFlow{ledger: ledger, catalog: catalog}
}

func (f *PurchaseFlow) Title() string { return "Compra telefonino" }

func (f *PurchaseFlow) Rows() []string {
	out := make([]string, len(f.catalog))
	for i, p := range f.catalog {
		out[i] = fmt.Sprintf("%s  %s", p.Name, FormatCurrency(p.Price))
	}
	return out
}

func (f *PurchaseFlow) State() FlowState { return f.state }

// Err is the recoverable error that ended the flow, if any.
func (f *PurchaseFlow) Err() error { return f.err }

func (f *PurchaseFlow) Chosen() Phone { return f.catalog[f.chosen] }

func (f *PurchaseFlow) Open(sh Shell) {
	f.state = AwaitingSelection
	f.chosen = 0
	f.err = nil
	sh.SetFieldText(FieldFunds, FormatCurrency(f.ledger.Funds()))
	for i, p := range f.catalog {
		sh.SetFieldText(FieldPhoneBase+FieldID(i), FormatCurrency(p.Price))
	}
}

func (f *PurchaseFlow) Handle(sh Shell, cmd Command) bool {
	if f.state.Done() {
		return true
	}
	switch c := cmd.(type) {
	case SelectItem:
		if c.Index < 0 || c.Index >= len(f.catalog) {
			panic(fmt.Sprintf("game: phone index %d out of range [0,%d)", c.Index, len(f.catalog)))
		}
		f.chosen = c.Index
		f.state = ItemChosen
		return false
	case Confirm:
		f.commit(sh)
		return true
	case Cancel:
		f.state = Cancelled
		return true
	default:
		return false
	}
}

func (f *PurchaseFlow) commit(sh Shell) {
	item := f.catalog[f.chosen]
	if err := f.ledger.Debit(item.Price); err != nil {
		f.err = err
		f.state = Cancelled
		sh.Notify(MsgCannotAfford)
		return
	}
	f.ledger.TakePhone(item)
	f.ledger.AdjustReputation(item.Reputation)
	f.state = Committed
}
