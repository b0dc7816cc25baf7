// Package normalizer rewrites invoice batches into each organization's
// canonical currency.
package normalizer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/reconciler/internal/entity"
	"github.com/samandr77/reconciler/internal/money"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=normalizer.go -destination=../mocks/normalizer.go -package=mocks

// SettingsSource resolves the canonical currency configured for an organization.
type SettingsSource interface {
	OrganizationCurrency(ctx context.Context, organizationID string) (entity.Currency, error)
}

type Normalizer struct {
	settings SettingsSource
	conv     money.Converter
	strict   bool
}

func New(settings SettingsSource, conv money.Converter, strict bool) *Normalizer {
	return &Normalizer{
		settings: settings,
		conv:     conv,
		strict:   strict,
	}
}

// Normalize groups invoices by organization, resolves each organization's
// canonical currency with a single settings lookup per organization and
// converts every invoice of the group (payments included) into it.
//
// With strict off, a failed lookup leaves that organization's invoices in
// their original currency and the run continues. With strict on, the lookup
// error aborts the whole batch.
//
// The result holds every input invoice exactly once; invoices of the same
// organization keep their relative order.
func (n *Normalizer) Normalize(ctx context.Context, invoices []entity.Invoice) ([]entity.Invoice, error) {
	groups := make(map[string][]entity.Invoice)

	var orgs []string

	for _, inv := range invoices {
		if _, ok := groups[inv.OrganizationID]; !ok {
			orgs = append(orgs, inv.OrganizationID)
		}

		groups[inv.OrganizationID] = append(groups[inv.OrganizationID], inv)
	}

	currencies := make(map[string]entity.Currency, len(orgs))

	for _, org := range orgs {
		currency, err := n.settings.OrganizationCurrency(ctx, org)
		if err != nil {
			if n.strict {
				return nil, fmt.Errorf("organization %q currency: %w", org, err)
			}

			slog.WarnContext(ctx, "organization currency lookup failed, keeping original currency",
				"organization_id", org, "error", err)

			continue
		}

		currencies[org] = currency
	}

	normalized := make([]entity.Invoice, 0, len(invoices))

	for _, org := range orgs {
		canonical, ok := currencies[org]

		for _, inv := range groups[org] {
			if !ok || inv.Currency == canonical {
				normalized = append(normalized, inv)
				continue
			}

			normalized = append(normalized, n.convert(inv, canonical))
		}
	}

	return normalized, nil
}

// convert rewrites the invoice amount and every payment amount independently.
// Payments are rounded on their own, so they may not sum exactly to the
// converted invoice total; that drift is accepted, not corrected.
func (n *Normalizer) convert(inv entity.Invoice, to entity.Currency) entity.Invoice {
	from := inv.Currency

	inv.Amount = n.conv.Convert(inv.Amount, from, to)

	if len(inv.Payments) > 0 {
		payments := make([]entity.Payment, len(inv.Payments))

		for i, p := range inv.Payments {
			p.Amount = n.conv.Convert(p.Amount, from, to)
			payments[i] = p
		}

		inv.Payments = payments
	}

	inv.Currency = to

	return inv
}
