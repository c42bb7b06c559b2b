package utils

import "fmt"

// FormatMoney keeps consistent two-decimal formatting for amounts.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatUSD renders an amount with the currency symbol used by the
// ledger sheet.
func FormatUSD(amount float64) string {
	return "$" + FormatMoney(amount)
}
