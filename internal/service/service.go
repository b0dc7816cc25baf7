package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/reconciler/internal/allocator"
	"github.com/samandr77/reconciler/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type InvoiceSource interface {
	PendingInvoices(ctx context.Context) ([]entity.Invoice, error)
}

type Normalizer interface {
	Normalize(ctx context.Context, invoices []entity.Invoice) ([]entity.Invoice, error)
}

type PaymentGateway interface {
	SubmitPayment(ctx context.Context, paymentID string, amount int64) (entity.PaymentStatus, error)
}

type Publisher interface {
	SendSettlementReport(ctx context.Context, results []entity.SettlementResult)
}

type Service struct {
	invoices   InvoiceSource
	normalizer Normalizer
	gateway    PaymentGateway
	publisher  Publisher
}

// New wires the orchestrator. publisher may be nil when no broker is configured.
func New(invoices InvoiceSource, normalizer Normalizer, gateway PaymentGateway, publisher Publisher) *Service {
	return &Service{
		invoices:   invoices,
		normalizer: normalizer,
		gateway:    gateway,
		publisher:  publisher,
	}
}

// Reconcile runs one full pass: fetch pending invoices, normalize currencies,
// match credit notes to received invoices by reference and settle the residual
// of every pending payment with the gateway, strictly one payment at a time.
//
// A fetch failure or a strict-mode normalization failure aborts the run before
// anything is submitted. Settlement failures are isolated per payment: the
// failed payment gets an error-carrying result and the run continues with the
// remaining payments and invoices.
func (s *Service) Reconcile(ctx context.Context) ([]entity.SettlementResult, error) {
	invoices, err := s.invoices.PendingInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pending invoices: %w", err)
	}

	normalized, err := s.normalizer.Normalize(ctx, invoices)
	if err != nil {
		return nil, fmt.Errorf("normalize invoices: %w", err)
	}

	credits := entity.CreditTotals(normalized)

	results := make([]entity.SettlementResult, 0)

	for _, inv := range normalized {
		if inv.Type != entity.InvoiceTypeReceived || len(inv.Payments) == 0 {
			continue
		}

		for _, instruction := range allocator.Allocate(inv.Payments, credits[inv.ID]) {
			results = append(results, s.settle(ctx, inv.ID, instruction))
		}
	}

	if s.publisher != nil {
		s.publisher.SendSettlementReport(ctx, results)
	}

	slog.InfoContext(ctx, "reconciliation finished",
		"invoices", len(normalized), "settlements", len(results))

	return results, nil
}

func (s *Service) settle(ctx context.Context, invoiceID string, in entity.PaymentInstruction) entity.SettlementResult {
	status, err := s.gateway.SubmitPayment(ctx, in.PaymentID, in.AmountToPay)
	if err != nil {
		slog.ErrorContext(ctx, "settle payment",
			"invoice_id", invoiceID, "payment_id", in.PaymentID, "error", err)

		return entity.SettlementResult{PaymentID: in.PaymentID, Err: err}
	}

	if status != entity.PaymentStatusPaid {
		err = fmt.Errorf("%w: payment %q settled with status %q, want %q",
			entity.ErrWrongAmount, in.PaymentID, status, entity.PaymentStatusPaid)

		slog.ErrorContext(ctx, "settle payment",
			"invoice_id", invoiceID, "payment_id", in.PaymentID, "error", err)

		return entity.SettlementResult{PaymentID: in.PaymentID, Err: err}
	}

	return entity.SettlementResult{PaymentID: in.PaymentID, Paid: true}
}
