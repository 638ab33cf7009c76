package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.Italian)

// FormatCurrency renders an amount of lire the way every price and balance is
// shown, e.g. "L. 1.250".
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return currencyPrinter.Sprintf("-L. %d", -amount)
	}
	return currencyPrinter.Sprintf("L. %d", amount)
}
