package feedback

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// inr prints amounts with Indian digit grouping (1,00,000 style).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// Rupees formats an amount as a whole-rupee figure, e.g. "₹1,50,000".
func Rupees(amount float64) string {
	return inr.Sprintf("₹%d", int64(math.Round(amount)))
}

// Percent formats a fraction as a whole percentage, e.g. 0.42 -> "42%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

// Months formats a month count to one decimal, e.g. "5.2".
func Months(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Times formats a multiplier to two decimals, e.g. "2.35".
func Times(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
