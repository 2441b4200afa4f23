package user

// Currency is a display currency preference. Amounts are always stored in the
// base currency (BGN); the preference only affects presentation.
type Currency string

const (
	CurrencyBGN Currency = "BGN"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	return c == CurrencyBGN || c == CurrencyEUR
}

type User struct {
	Id              int
	Uid             string
	Email           string
	DisplayName     string
	DisplayCurrency Currency
}
