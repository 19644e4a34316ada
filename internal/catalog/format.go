package catalog

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders a whole-unit price with locale digit grouping,
// e.g. 2500000 → "$2,500,000" for en-US.
func FormatPrice(amount int64, locale string) string {
	return printer(locale).Sprintf("$%d", amount)
}

// ResultsSummary renders the toolbar's result range line.
func ResultsSummary(first, last, total int) string {
	if total <= 0 {
		return "No results"
	}
	first = max(first, 1)
	last = min(last, total)
	return fmt.Sprintf("Showing %d-%d of %d results", first, last, total)
}

func printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag)
}
