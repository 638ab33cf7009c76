package game

import "fmt"

// SubscriptionFlow is the "SIM and top-up" dialog.
//
// Buying a new SIM replaces whatever plan is active and forfeits its leftover
// credit. A top-up only works on an active SIM of the same provider; without
// one the player is told so and the dialog stays open.
type SubscriptionFlow struct {
	ledger  *Ledger
	catalog []Plan
	chosen  int
	state   FlowState
	err     error
}

func NewSubscriptionFlow(ledger *Ledger, catalog []Plan) *SubscriptionFlow {
	if len(catalog) == 0 {
		panic("game: subscription flow needs at least one plan")
	}
	return &SubscriptionFlow{ledger: ledger, catalog: catalog}
}

func (f *SubscriptionFlow) Title() string { return "Abbonamento" }

func (f *SubscriptionFlow) Rows() []string {
	out := make([]string, len(f.catalog))
	for i, p := range f.catalog {
		out[i] = fmt.Sprintf("%s  %s", p.Name, FormatCurrency(p.Price))
	}
	return out
}

func (f *SubscriptionFlow) State() FlowState { return f.state }

func (f *SubscriptionFlow) Err() error { return f.err }

func (f *SubscriptionFlow) Chosen() Plan { return f.catalog[f.chosen] }

func (f *SubscriptionFlow) Open(sh Shell) {
	f.state = AwaitingSelection
	f.chosen = 0
	f.err = nil
	sh.SetFieldText(FieldFunds, FormatCurrency(f.ledger.Funds()))
	if sub := f.ledger.Subscription(); sub.Active() {
		sh.SetFieldText(FieldCurrentPlan, sub.Name)
	}
	for i, p := range f.catalog {
		sh.SetFieldText(FieldPlanBase+FieldID(i), FormatCurrency(p.Price))
	}
}

func (f *SubscriptionFlow) Handle(sh Shell, cmd Command) bool {
	if f.state.Done() {
		return true
	}
	switch c := cmd.(type) {
	case SelectItem:
		if c.Index < 0 || c.Index >= len(f.catalog) {
			panic(fmt.Sprintf("game: plan index %d out of range [0,%d)", c.Index, len(f.catalog)))
		}
		f.chosen = c.Index
		f.state = ItemChosen
		return false
	case Confirm:
		return f.commit(sh)
	case Cancel:
		f.state = Cancelled
		return true
	default:
		return false
	}
}

func (f *SubscriptionFlow) commit(sh Shell) bool {
	plan := f.catalog[f.chosen]
	if !f.ledger.CanAfford(plan.Price) {
		f.err = fmt.Errorf("%w: %s costs %s", ErrInsufficientFunds, plan.Name, FormatCurrency(plan.Price))
		f.state = Cancelled
		sh.Notify(MsgCannotAfford)
		return true
	}

	switch plan.Kind {
	case PlanTopUp:
		if err := f.ledger.TopUp(plan); err != nil {
			f.err = err
			sh.Notify(MsgTopUpWithoutSIM)
			return false
		}
	default:
		f.ledger.Subscribe(plan)
	}
	// Affordability was checked above, so the debit cannot fail.
	_ = f.ledger.Debit(plan.Price)
	f.ledger.AdjustReputation(plan.Reputation)
	f.err = nil
	f.state = Committed
	return true
}
