package domain

import "github.com/shopspring/decimal"

// CeilCurrency rounds a currency amount up to the nearest whole unit.
// Every intermediate amount in the simulation is ceiled independently; this
// conservative policy compounds over the loan term and is part of the model,
// not rounding noise.
func CeilCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Ceil()
}

// SafeParse parses a string into a decimal, returning zero for invalid or empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
