package billing_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/reconciler/internal/clients/billing"
	"github.com/samandr77/reconciler/internal/entity"
)

func TestClient_PendingInvoices(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/invoices", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		_, _ = fmt.Fprint(w, `[
			{
				"id": "I1",
				"amount": 150,
				"organization_id": "O1",
				"currency": "USD",
				"type": "received",
				"payments": [
					{"id": "p1", "amount": 100, "status": "pending"},
					{"id": "p2", "amount": 50, "status": "paid"}
				]
			},
			{
				"id": "C1",
				"amount": 30,
				"organization_id": "O1",
				"currency": "USD",
				"type": "credit_note",
				"reference": "I1"
			}
		]`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := billing.NewClient(server.URL)

	got, err := c.PendingInvoices(context.Background())
	require.NoError(t, err)

	require.Equal(t, []entity.Invoice{
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
	}, got)
}

func TestClient_PendingInvoices_SchemaMismatch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/invoices", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[{"amount": 150, "organization_id": "O1", "currency": "USD", "type": "received"}]`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := billing.NewClient(server.URL)

	_, err := c.PendingInvoices(context.Background())
	require.ErrorIs(t, err, entity.ErrSchemaMismatch)
}

func TestClient_PendingInvoices_BadStatus(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/invoices", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := billing.NewClient(server.URL)

	_, err := c.PendingInvoices(context.Background())
	require.Error(t, err)
}

func TestClient_OrganizationCurrency(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/organizations/O1/settings", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		_, _ = fmt.Fprint(w, `{"organization_id": "O1", "currency": "CLP"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := billing.NewClient(server.URL)

	got, err := c.OrganizationCurrency(context.Background(), "O1")
	require.NoError(t, err)
	require.Equal(t, entity.CurrencyCLP, got)
}

func TestClient_OrganizationCurrency_SchemaMismatch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/organizations/O1/settings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"organization_id": "O1"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := billing.NewClient(server.URL)

	_, err := c.OrganizationCurrency(context.Background(), "O1")
	require.ErrorIs(t, err, entity.ErrSchemaMismatch)
}
