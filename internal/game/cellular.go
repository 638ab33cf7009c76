package game

import (
	"errors"
	"fmt"
	"log/slog"
)

// Recorder receives one call per finished menu action.
type Recorder interface {
	RecordAction(action, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAction(string, string) {}

// Result describes how the last menu action ended.
type Result struct {
	Action  MenuAction
	Outcome string
	Err     error
}

// Cellular is the phone-shop menu: buy, sell back, subscribe.
type Cellular struct {
	ledger   *Ledger
	calendar Calendar
	phones   []Phone
	plans    []Plan
	log      *slog.Logger
	rec      Recorder
	last     Result
}

type CellularOption func(*Cellular)

func WithLogger(logger *slog.Logger) CellularOption {
	return func(c *Cellular) {
		if logger != nil {
			c.log = logger
		}
	}
}

func WithRecorder(rec Recorder) CellularOption {
	return func(c *Cellular) {
		if rec != nil {
			c.rec = rec
		}
	}
}

func WithCatalog(phones []Phone, plans []Plan) CellularOption {
	return func(c *Cellular) {
		if len(phones) > 0 {
			c.phones = phones
		}
		if len(plans) > 0 {
			c.plans = plans
		}
	}
}

func NewCellular(ledger *Ledger, cal Calendar, opts ...CellularOption) *Cellular {
	c := &Cellular{
		ledger:   ledger,
		calendar: cal,
		phones:   DefaultPhones(),
		plans:    DefaultPlans(),
		log:      slog.Default(),
		rec:      nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cellular) Ledger() *Ledger { return c.ledger }

func (c *Cellular) Calendar() Calendar { return c.calendar }

func (c *Cellular) SetCalendar(cal Calendar) { c.calendar = cal }

func (c *Cellular) Phones() []Phone { return c.phones }

func (c *Cellular) Plans() []Plan { return c.plans }

func (c *Cellular) LastResult() Result { return c.last }

func (c *Cellular) Title() string { return "Telefonino" }

func (c *Cellular) Rows() []string {
	return []string{"Compra telefonino", "Vendi telefonino", "Abbonamento / ricarica"}
}

func (c *Cellular) Open(sh Shell) {
	c.Refresh(sh)
}

// Handle maps the menu rows onto actions; Confirm and Cancel close the menu.
func (c *Cellular) Handle(sh Shell, cmd Command) bool {
	switch v := cmd.(type) {
	case SelectItem:
		if v.Index < 0 || v.Index >= len(c.Rows()) {
			panic(fmt.Sprintf("game: menu row %d out of range", v.Index))
		}
		return c.Do(sh, MenuAction(int(MenuBuyPhone)+v.Index))
	case Confirm, Cancel:
		return c.Do(sh, MenuClose)
	default:
		return false
	}
}

// Do runs one menu action and reports whether the menu should close.
func (c *Cellular) Do(sh Shell, action MenuAction) bool {
	switch action {
	case MenuBuyPhone:
		c.runModal(sh, action, func() (FlowState, error) {
			flow := NewPurchaseFlow(c.ledger, c.phones)
			sh.OpenModal(flow)
			return flow.State(), flow.Err()
		})
	case MenuSubscribe:
		c.runModal(sh, action, func() (FlowState, error) {
			flow := NewSubscriptionFlow(c.ledger, c.plans)
			sh.OpenModal(flow)
			return flow.State(), flow.Err()
		})
	case MenuSellPhone:
		_, err := SellBack(sh, c.ledger, c.calendar)
		state := Committed
		if err != nil {
			state = Cancelled
		}
		c.finish(action, state, err)
		c.Refresh(sh)
	case MenuClose:
		return true
	}
	return false
}

func (c *Cellular) runModal(sh Shell, action MenuAction, run func() (FlowState, error)) {
	if !IsOpenForBusiness(c.calendar) {
		sh.Notify(MsgShopClosed)
		c.finish(action, Cancelled, ErrShopClosed)
		return
	}
	state, err := run()
	c.finish(action, state, err)
	c.Refresh(sh)
}

// Refresh pushes the ledger summary to the shell.
func (c *Cellular) Refresh(sh Shell) {
	sum := c.ledger.Summary()
	sh.SetFieldText(FieldFunds, FormatCurrency(sum.Funds))
	sh.SetFieldText(FieldPhoneName, sum.PhoneName)
	if sum.Subscription {
		sh.SetFieldText(FieldPlanName, sum.PlanName)
		sh.SetFieldText(FieldPlanCredit, FormatCurrency(sum.PlanCredit))
	} else {
		sh.SetFieldText(FieldPlanName, "")
		sh.SetFieldText(FieldPlanCredit, "")
	}
}

func (c *Cellular) finish(action MenuAction, state FlowState, err error) {
	outcome := outcomeOf(state, err)
	c.last = Result{Action: action, Outcome: outcome, Err: err}
	c.rec.RecordAction(action.String(), outcome)
	c.log.Info("cellular action",
		"action", action.String(),
		"outcome", outcome,
		"funds", c.ledger.Funds(),
		"reputation", c.ledger.Reputation(),
	)
}

func outcomeOf(state FlowState, err error) string {
	switch {
	case errors.Is(err, ErrShopClosed):
		return "shop_closed"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNothingToSell):
		return "nothing_to_sell"
	case errors.Is(err, ErrSaleDeclined):
		return "declined"
	case errors.Is(err, ErrNoSubscription) && state != Committed:
		return "no_subscription"
	case err != nil:
		return "error"
	}
	return state.String()
}
