package entity

// OrganizationSettings carries the canonical currency an organization's
// invoices must be expressed in.
type OrganizationSettings struct {
	OrganizationID string
	Currency       Currency
}

// PaymentInstruction is the residual amount to charge for one payment after
// credit allocation. Zero is a valid amount: it confirms a fully credited
// payment with the gateway.
type PaymentInstruction struct {
	PaymentID   string
	AmountToPay int64
}

// SettlementResult is the terminal outcome of submitting one instruction.
type SettlementResult struct {
	PaymentID string
	Paid      bool
	Err       error
}
