package service

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Pricing holds the parsed amounts and their rendered template texts
type Pricing struct {
	Price    decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal

	PriceText    string
	ShippingText string
	TotalText    string
}

var nonAmountChars = regexp.MustCompile(`[^0-9.]`)

// ParseAmount reads a price that may be a number or a string with currency
// symbols. Anything unparsable is zero.
func ParseAmount(v interface{}) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	cleaned := nonAmountChars.ReplaceAllString(toText(v), "")
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// CalculatePricing computes the order total and renders price, shipping and
// total with the store currency label. Zero shipping renders as free and a
// zero price as not specified; the total is always rendered.
func CalculatePricing(priceRaw, shippingRaw interface{}, currencyLabel string) Pricing {
	price := ParseAmount(priceRaw)
	shipping := ParseAmount(shippingRaw)
	total := lo.Ternary(shipping.IsPositive(), price.Add(shipping), price)

	return Pricing{
		Price:        price,
		Shipping:     shipping,
		Total:        total,
		PriceText:    lo.Ternary(price.IsPositive(), money(price, currencyLabel), placeholderNotSpecified),
		ShippingText: lo.Ternary(shipping.IsPositive(), money(shipping, currencyLabel), placeholderFree),
		TotalText:    money(total, currencyLabel),
	}
}

func money(amount decimal.Decimal, currencyLabel string) string {
	return fmt.Sprintf("%s %s", amount.String(), currencyLabel)
}
