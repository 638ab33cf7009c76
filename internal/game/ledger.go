package game

import "fmt"

// Ledger is the player's commerce state for one game session. It is owned by
// whoever runs the session and handed to each flow by pointer; flows never run
// concurrently, so it carries no lock.
type Ledger struct {
	funds        int64
	reputation   int
	phone        *OwnedPhone
	subscription ActiveSubscription
}

func NewLedger(funds int64, reputation int) *Ledger {
	if funds < 0 {
		funds = 0
	}
	return &Ledger{
		funds:        funds,
		reputation:   ClampReputation(reputation),
		subscription: ActiveSubscription{Credit: NoSubscription},
	}
}

func (l *Ledger) Funds() int64 {
	return l.funds
}

func (l *Ledger) Reputation() int {
	return l.reputation
}

// Phone returns the owned phone, or false when the player has none.
func (l *Ledger) Phone() (OwnedPhone, bool) {
	if l.phone == nil || !l.phone.Active {
		return OwnedPhone{}, false
	}
	return *l.phone, true
}

func (l *Ledger) Subscription() ActiveSubscription {
	return l.subscription
}

func (l *Ledger) CanAfford(price int64) bool {
	return l.funds >= price
}

func (l *Ledger) Debit(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("debit amount must be >= 0, got %d", amount)
	}
	if l.funds < amount {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, FormatCurrency(amount), FormatCurrency(l.funds))
	}
	l.funds -= amount
	return nil
}

func (l *Ledger) Credit(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("credit amount must be >= 0, got %d", amount)
	}
	l.funds += amount
	return nil
}

func (l *Ledger) AdjustReputation(delta int) {
	l.reputation = ClampReputation(l.reputation + delta)
}

func (l *Ledger) TakePhone(p Phone) {
	l.phone = &OwnedPhone{Phone: p, Active: true}
}

// ReleasePhone marks the owned phone as sold and drops it.
func (l *Ledger) ReleasePhone() {
	if l.phone != nil {
		l.phone.Active = false
	}
	l.phone = nil
}

func (l *Ledger) Subscribe(p Plan) {
	l.subscription = ActiveSubscription{Name: p.Name, Provider: p.Provider, Credit: p.Credit}
}

func (l *Ledger) TopUp(p Plan) error {
	if !l.subscription.Active() || l.subscription.Provider != p.Provider {
		return ErrNoSubscription
	}
	l.subscription.Credit += p.Credit
	return nil
}

// SpendCredit consumes call credit; the balance never drops below zero.
func (l *Ledger) SpendCredit(amount int64) int64 {
	if !l.subscription.Active() || amount <= 0 {
		return 0
	}
	if amount > l.subscription.Credit {
		amount = l.subscription.Credit
	}
	l.subscription.Credit -= amount
	return amount
}

// ExpireSubscription is called by the day clock when the plan runs out.
func (l *Ledger) ExpireSubscription() {
	l.subscription = ActiveSubscription{Credit: NoSubscription}
}

func (l *Ledger) Summary() Summary {
	out := Summary{
		Funds:      l.funds,
		Reputation: l.reputation,
		PlanCredit: NoSubscription,
	}
	if p, ok := l.Phone(); ok {
		out.HasPhone = true
		out.PhoneName = p.Name
	}
	if l.subscription.Active() {
		out.Subscription = true
		out.PlanName = l.subscription.Name
		out.PlanCredit = l.subscription.Credit
	}
	return out
}
