package client

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brandPrefix = regexp.MustCompile(`(?i)vibe\s*`)

// CleanName strips every "Vibe" (any case) and the whitespace after it, for display only.
func CleanName(name string) string {
	return strings.TrimSpace(brandPrefix.ReplaceAllString(name, ""))
}

// CleanProducts returns a copy of products with display names.
func CleanProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		p.Name = CleanName(p.Name)
		out[i] = p
	}
	return out
}

func FormatAmount(amount decimal.Decimal, unit currency.Unit) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64())))
}
