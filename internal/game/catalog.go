package game

var phones = []Phone{
	{Name: "Motorola StarTAC", Price: 390, Reputation: 10},
	{Name: "Nokia 8110", Price: 290, Reputation: 6},
	{Name: "Ericsson GH688", Price: 190, Reputation: 2},
}

var plans = []Plan{
	{Name: "Omnitel - Nuova SIM", Provider: "Omnitel", Kind: PlanSIM, Price: 60, Credit: 20, Reputation: 2},
	{Name: "Omnitel - Ricarica 25", Provider: "Omnitel", Kind: PlanTopUp, Price: 25, Credit: 25},
	{Name: "Omnitel - Ricarica 50", Provider: "Omnitel", Kind: PlanTopUp, Price: 50, Credit: 50, Reputation: 1},
	{Name: "TIM - Nuova SIM", Provider: "TIM", Kind: PlanSIM, Price: 55, Credit: 15, Reputation: 1},
	{Name: "TIM - Ricarica 25", Provider: "TIM", Kind: PlanTopUp, Price: 25, Credit: 25},
	{Name: "TIM - Ricarica 50", Provider: "TIM", Kind: PlanTopUp, Price: 50, Credit: 50, Reputation: 1},
	{Name: "Wind - Nuova SIM", Provider: "Wind", Kind: PlanSIM, Price: 45, Credit: 10},
	{Name: "Wind - Ricarica 25", Provider: "Wind", Kind: PlanTopUp, Price: 25, Credit: 25},
	{Name: "Wind - Ricarica 50", Provider: "Wind", Kind: PlanTopUp, Price: 50, Credit: 50},
}

// DefaultPhones returns a copy of the shop's phone list.
func DefaultPhones() []Phone {
	out := make([]Phone, len(phones))
	copy(out, phones)
	return out
}

// DefaultPlans returns a copy of the shop's plan list.
func DefaultPlans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}
