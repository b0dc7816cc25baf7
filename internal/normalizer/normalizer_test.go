package normalizer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/reconciler/internal/entity"
	"github.com/samandr77/reconciler/internal/mocks"
	"github.com/samandr77/reconciler/internal/money"
	"github.com/samandr77/reconciler/internal/normalizer"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsSource(ctrl)

	invoices := []entity.Invoice{
		{
			ID:             "I1",
			Amount:         150,
			OrganizationID: "O1",
			Currency:       entity.CurrencyUSD,
			Type:           entity.InvoiceTypeReceived,
			Payments: []entity.Payment{
				{ID: "p1", Amount: 100, Status: entity.PaymentStatusPending},
				{ID: "p2", Amount: 50, Status: entity.PaymentStatusPaid},
			},
		},
		{
			ID:             "C1",
			Amount:         30,
			OrganizationID: "O1",
			Currency:       entity.CurrencyUSD,
			Type:           entity.InvoiceTypeCreditNote,
			Reference:      "I1",
		},
		{
			ID:             "I2",
			Amount:         700,
			OrganizationID: "O2",
			Currency:       entity.CurrencyCLP,
			Type:           entity.InvoiceTypeReceived,
		},
	}

	// One lookup per organization, no matter how many invoices it has.
	settings.EXPECT().OrganizationCurrency(context.Background(), "O1").Return(entity.CurrencyCLP, nil)
	settings.EXPECT().OrganizationCurrency(context.Background(), "O2").Return(entity.CurrencyCLP, nil)

	n := normalizer.New(settings, money.NewConverter(money.DefaultCLPPerUSD), false)

	got, err := n.Normalize(context.Background(), invoices)
	require.NoError(t, err)

	require.Equal(t, []entity.Invoice{
		{
			ID:             "I1",
			Amount:         120000,
			OrganizationID: "O1",
			Currency:       entity.CurrencyCLP,
			Type:           entity.InvoiceTypeReceived,
			Payments: []entity.Payment{
				{ID: "p1", Amount: 80000, Status: entity.PaymentStatusPending},
				{ID: "p2", Amount: 40000, Status: entity.PaymentStatusPaid},
			},
		},
		{
			ID:             "C1",
			Amount:         24000,
			OrganizationID: "O1",
			Currency:       entity.CurrencyCLP,
			Type:           entity.InvoiceTypeCreditNote,
			Reference:      "I1",
		},
		{
			ID:             "I2",
			Amount:         700,
			OrganizationID: "O2",
			Currency:       entity.CurrencyCLP,
			Type:           entity.InvoiceTypeReceived,
		},
	}, got)
}

func TestNormalizer_Normalize_IdentitySkip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsSource(ctrl)

	invoices := []entity.Invoice{
		{ID: "I1", Amount: 999, OrganizationID: "O1", Currency: entity.CurrencyUSD, Type: entity.InvoiceTypeReceived},
	}

	settings.EXPECT().OrganizationCurrency(context.Background(), "O1").Return(entity.CurrencyUSD, nil)

	n := normalizer.New(settings, money.NewConverter(money.DefaultCLPPerUSD), false)

	got, err := n.Normalize(context.Background(), invoices)
	require.NoError(t, err)
	require.Equal(t, invoices, got)
}

func TestNormalizer_Normalize_LookupFailSoft(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsSource(ctrl)

	invoices := []entity.Invoice{
		{ID: "I1", Amount: 100, OrganizationID: "O1", Currency: entity.CurrencyUSD, Type: entity.InvoiceTypeReceived},
		{ID: "I2", Amount: 200, OrganizationID: "O2", Currency: entity.CurrencyUSD, Type: entity.InvoiceTypeReceived},
	}

	settings.EXPECT().OrganizationCurrency(context.Background(), "O1").Return(entity.Currency(""), errors.New("boom"))
	settings.EXPECT().OrganizationCurrency(context.Background(), "O2").Return(entity.CurrencyCLP, nil)

	n := normalizer.New(settings, money.NewConverter(money.DefaultCLPPerUSD), false)

	got, err := n.Normalize(context.Background(), invoices)
	require.NoError(t, err)

	// O1 passes through unconverted, O2 is still normalized.
	require.Equal(t, []entity.Invoice{
		{ID: "I1", Amount: 100, OrganizationID: "O1", Currency: entity.CurrencyUSD, Type: entity.InvoiceTypeReceived},
		{ID: "I2", Amount: 160000, OrganizationID: "O2", Currency: entity.CurrencyCLP, Type: entity.InvoiceTypeReceived},
	}, got)
}

func TestNormalizer_Normalize_LookupStrict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsSource(ctrl)

	invoices := []entity.Invoice{
		{ID: "I1", Amount: 100, OrganizationID: "O1", Currency: entity.CurrencyUSD, Type: entity.InvoiceTypeReceived},
	}

	wantErr := errors.New("boom")
	settings.EXPECT().OrganizationCurrency(context.Background(), "O1").Return(entity.Currency(""), wantErr)

	n := normalizer.New(settings, money.NewConverter(money.DefaultCLPPerUSD), true)

	got, err := n.Normalize(context.Background(), invoices)
	require.ErrorIs(t, err, wantErr)
	require.Nil(t, got)
}
