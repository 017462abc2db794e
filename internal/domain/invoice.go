package domain

import "fmt"

// InvoiceTotals is the derived billing breakdown created when a rental
// finishes: base lease cost plus itemized incident costs.
type InvoiceTotals struct {
	Base           float64
	IncidentsTotal float64
	Total          float64
}

// DeriveInvoice composes the invoice amounts for a finished rental.
func DeriveInvoice(base float64, incidentCosts []float64) InvoiceTotals {
	var incidents float64
	for _, c := range incidentCosts {
		incidents += c
	}
	return InvoiceTotals{
		Base:           base,
		IncidentsTotal: incidents,
		Total:          base + incidents,
	}
}

// NextInvoiceStatus validates an invoice status change. Paying is only legal
// from pending; voiding is the designated soft-delete and is likewise only
// legal while pending.
func NextInvoiceStatus(current, requested InvoiceStatus) error {
	if current == InvoicePending && (requested == InvoicePaid || requested == InvoiceVoided) {
		return nil
	}
	return fmt.Errorf("%w: invoice is %s, cannot mark %s", ErrInvalidInvoiceState, current, requested)
}
