package entity

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCLP Currency = "CLP"
)

func (c Currency) String() string {
	return string(c)
}

type InvoiceType string

const (
	InvoiceTypeReceived   InvoiceType = "received"
	InvoiceTypeCreditNote InvoiceType = "credit_note"
)

func (t InvoiceType) String() string {
	return string(t)
}

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Payment is a single payment obligation belonging to one received invoice.
// Amounts are integers in the owning invoice's currency units.
type Payment struct {
	ID     string
	Amount int64
	Status PaymentStatus
}

func (p Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// Invoice is one record from the billing service. For credit notes Reference
// holds the id of the received invoice the note offsets; Payments is only set
// on received invoices.
type Invoice struct {
	ID             string
	Amount         int64
	OrganizationID string
	Currency       Currency
	Type           InvoiceType
	Reference      string
	Payments       []Payment
}

func (i Invoice) IsCreditNote() bool {
	return i.Type == InvoiceTypeCreditNote
}

// CreditTotals sums credit note amounts keyed by the id of the invoice each
// note references. Notes without a reference contribute nothing; notes
// referencing an unknown invoice end up as unused keys.
func CreditTotals(invoices []Invoice) map[string]int64 {
	totals := make(map[string]int64)

	for _, inv := range invoices {
		if !inv.IsCreditNote() || inv.Reference == "" {
			continue
		}

		totals[inv.Reference] += inv.Amount
	}

	return totals
}
