// Package money converts integer amounts between the two supported
// currencies at a fixed CLP-per-USD exchange rate.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/samandr77/reconciler/internal/entity"
)

// DefaultCLPPerUSD is the reference exchange rate.
const DefaultCLPPerUSD = 800

type Converter struct {
	rate decimal.Decimal
}

func NewConverter(clpPerUSD int64) Converter {
	return Converter{rate: decimal.NewFromInt(clpPerUSD)}
}

// Convert rounds to the nearest integer, ties away from zero. A pair outside
// USD/CLP is a passthrough: the amount comes back unchanged rather than
// failing the run.
func (c Converter) Convert(amount int64, from, to entity.Currency) int64 {
	if from == to {
		return amount
	}

	a := decimal.NewFromInt(amount)

	switch {
	case from == entity.CurrencyUSD && to == entity.CurrencyCLP:
		return a.Mul(c.rate).Round(0).IntPart()

	case from == entity.CurrencyCLP && to == entity.CurrencyUSD:
		return a.Div(c.rate).Round(0).IntPart()

	default:
		return amount
	}
}
