package money_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/reconciler/internal/entity"
	"github.com/samandr77/reconciler/internal/money"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := money.NewConverter(money.DefaultCLPPerUSD)

	for _, tt := range []struct {
		name   string
		amount int64
		from   entity.Currency
		to     entity.Currency
		want   int64
	}{
		{
			name:   "USD to CLP",
			amount: 100,
			from:   entity.CurrencyUSD,
			to:     entity.CurrencyCLP,
			want:   80000,
		},
		{
			name:   "CLP to USD exact",
			amount: 80000,
			from:   entity.CurrencyCLP,
			to:     entity.CurrencyUSD,
			want:   100,
		},
		{
			name:   "CLP to USD rounds to nearest", // 1000/800 = 1.25
			amount: 1000,
			from:   entity.CurrencyCLP,
			to:     entity.CurrencyUSD,
			want:   1,
		},
		{
			name:   "CLP to USD ties away from zero", // 1200/800 = 1.5
			amount: 1200,
			from:   entity.CurrencyCLP,
			to:     entity.CurrencyUSD,
			want:   2,
		},
		{
			name:   "same currency untouched",
			amount: 42,
			from:   entity.CurrencyUSD,
			to:     entity.CurrencyUSD,
			want:   42,
		},
		{
			name:   "unknown source passthrough",
			amount: 42,
			from:   "EUR",
			to:     entity.CurrencyUSD,
			want:   42,
		},
		{
			name:   "unknown target passthrough",
			amount: 42,
			from:   entity.CurrencyUSD,
			to:     "EUR",
			want:   42,
		},
		{
			name:   "zero amount",
			amount: 0,
			from:   entity.CurrencyUSD,
			to:     entity.CurrencyCLP,
			want:   0,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := conv.Convert(tt.amount, tt.from, tt.to)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	t.Parallel()

	conv := money.NewConverter(money.DefaultCLPPerUSD)

	for _, amount := range []int64{0, 1, 13, 100, 999, 123457, 80000000} {
		clp := conv.Convert(amount, entity.CurrencyUSD, entity.CurrencyCLP)
		back := conv.Convert(clp, entity.CurrencyCLP, entity.CurrencyUSD)

		require.InDelta(t, amount, back, 1, "round trip of %d drifted more than the rounding tolerance", amount)
	}
}
