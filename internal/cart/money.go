package cart

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every formatted amount.
var CurrencySymbol = "$"

// FormatMoney renders d with two fraction digits, e.g. "$479.97".
func FormatMoney(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(2)
}
