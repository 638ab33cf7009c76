package game

type Phone struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Reputation int    `json:"reputation_delta"`
}

type PlanKind int

const (
	PlanSIM PlanKind = iota
	PlanTopUp
)

func (k PlanKind) String() string {
	switch k {
	case PlanSIM:
		return "sim"
	case PlanTopUp:
		return "top-up"
	default:
		return "unknown"
	}
}

type Plan struct {
	Name       string   `json:"name"`
	Provider   string   `json:"provider"`
	Kind       PlanKind `json:"kind"`
	Price      int64    `json:"price"`
	Credit     int64    `json:"credit"`
	Reputation int      `json:"reputation_delta"`
}

type OwnedPhone struct {
	Phone
	Active bool `json:"active"`
}

type ActiveSubscription struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Credit   int64  `json:"credit"`
}

func (s ActiveSubscription) Active() bool {
	return s.Credit > NoSubscription
}

type Summary struct {
	Funds        int64  `json:"funds"`
	Reputation   int    `json:"reputation"`
	PhoneName    string `json:"phone_name,omitempty"`
	PlanName     string `json:"plan_name,omitempty"`
	PlanCredit   int64  `json:"plan_credit"`
	HasPhone     bool   `json:"has_phone"`
	Subscription bool   `json:"subscription"`
}

type FlowState int

const (
	AwaitingSelection FlowState = iota
	ItemChosen
	Committed
	Cancelled
)

func (s FlowState) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting_selection"
	case ItemChosen:
		return "item_chosen"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s FlowState) Done() bool {
	return s == Committed || s == Cancelled
}
