package game

import "fmt"

// SellBack asks the shop to buy the player's phone back. It returns nil when
// the sale went through; every other outcome has already been shown to the
// player and left the ledger untouched.
func SellBack(sh Shell, ledger *Ledger, cal Calendar) (int64, error) {
	if !IsOpenForBusiness(cal) {
		sh.Notify(MsgShopClosed)
		return 0, ErrShopClosed
	}
	phone, ok := ledger.Phone()
	if !ok {
		sh.Notify(MsgNothingToSell)
		return 0, ErrNothingToSell
	}

	offer := ResaleOffer(phone.Price)
	if !sh.Confirm(fmt.Sprintf(MsgSellOfferFormat, FormatCurrency(offer))) {
		sh.Notify(MsgSaleDeclined)
		return 0, ErrSaleDeclined
	}
	if err := ledger.Credit(offer); err != nil {
		return 0, err
	}
	ledger.ReleasePhone()
	return offer, nil
}
