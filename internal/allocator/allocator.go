// Package allocator computes how much of each payment remains owed after
// applying credit note value to an invoice.
package allocator

import (
	"cmp"
	"slices"

	"github.com/samandr77/reconciler/internal/entity"
)

// Allocate spreads creditTotal across the invoice's payments and returns one
// instruction per non-paid payment, zero amounts included.
//
// Payments are processed largest amount first so credit clears the biggest
// debts before the rest; equal amounts fall back to payment id ascending to
// keep runs reproducible. Paid payments consume no credit and never appear in
// the output. Instructions come back in processing order.
func Allocate(payments []entity.Payment, creditTotal int64) []entity.PaymentInstruction {
	ordered := make([]entity.Payment, len(payments))
	copy(ordered, payments)

	slices.SortStableFunc(ordered, func(a, b entity.Payment) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	remaining := creditTotal
	instructions := make([]entity.PaymentInstruction, 0, len(ordered))

	for _, p := range ordered {
		if p.IsPaid() {
			continue
		}

		toPay := p.Amount
		if remaining >= toPay {
			remaining -= toPay
			toPay = 0
		} else {
			toPay -= remaining
			remaining = 0
		}

		instructions = append(instructions, entity.PaymentInstruction{
			PaymentID:   p.ID,
			AmountToPay: toPay,
		})
	}

	return instructions
}
