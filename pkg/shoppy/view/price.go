package view

import "fmt"

// CurrencySymbol prefixes every rendered price.
const CurrencySymbol = "$"

// FormatPrice renders a price with two decimals, e.g. 22.3 -> "$22.30".
func FormatPrice(price float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, price)
}
