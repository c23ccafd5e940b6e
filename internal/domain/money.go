package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MoneyScale is the number of fractional digits stored and rendered for amounts.
const MoneyScale = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// String renders the amount with exactly two fractional digits, e.g. "20.00".
func (m Money) String() string {
	return m.Amount.StringFixed(MoneyScale)
}

func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// SumLines adds unrounded line totals and rounds the sum once.
func SumLines[T any](lines []T, lineTotal func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(lineTotal(line))
	}
	return total.Round(MoneyScale)
}
