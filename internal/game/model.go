package game

import (
	"errors"
)

const (
	StarterFunds      = int64(100)
	StarterReputation = 0

	MinReputation = 0
	MaxReputation = 100

	// NoSubscription marks ActiveSubscription.Credit when no SIM is active.
	NoSubscription = int64(-1)

	ResaleBonus = int64(15)
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNothingToSell     = errors.New("no phone to sell")
	ErrShopClosed        = errors.New("shop closed for the holiday")
	ErrNoSubscription    = errors.New("top-up requires an active subscription with the same provider")
	ErrSaleDeclined      = errors.New("sale declined")
)

// Fixed notices shown by the shell. The wording is part of the game.
const (
	MsgShopClosed      = "Stranamente, in un giorno di vacanza, il negozio e' chiuso..."
	MsgNothingToSell   = "Che telefonino vuoi vendere, pirletta ?"
	MsgSaleDeclined    = "Allora vai a farti fottere, pirletta !"
	MsgCannotAfford    = "Non hai abbastanza soldi..."
	MsgTopUpWithoutSIM = "Che te ne fai di una ricarica se non hai la SIM ?"
	MsgSellOfferFormat = "Ti posso dare %s per il tuo telefonino... vuoi vendermelo ?"
)

func ClampReputation(v int) int {
	if v < MinReputation {
		return MinReputation
	}
	if v > MaxReputation {
		return MaxReputation
	}
	return v
}

// ResaleOffer is what the shop pays back for a phone bought at price.
func ResaleOffer(price int64) int64 {
	return price/2 + ResaleBonus
}
