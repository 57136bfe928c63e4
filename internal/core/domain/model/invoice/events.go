package invoice

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

const (
	EventIssued          = "invoice.issued"
	EventPaymentRecorded = "invoice.payment_recorded"
	EventPaid            = "invoice.paid"
)

type IssuedEvent struct {
	kernel.BaseEvent
	Code          string `json:"code"`
	ClientID      string `json:"client_id"`
	AmountInclTax string `json:"amount_incl_tax"`
	DueDate       string `json:"due_date"`
}

type PaymentRecordedEvent struct {
	kernel.BaseEvent
	Code      string `json:"code"`
	ClientID  string `json:"client_id"`
	PaymentID string `json:"payment_id"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	PaidTotal string `json:"paid_total"`
}

type PaidEvent struct {
	kernel.BaseEvent
	Code          string `json:"code"`
	ClientID      string `json:"client_id"`
	AmountInclTax string `json:"amount_incl_tax"`
}

func newIssuedEvent(inv *Invoice, at time.Time) IssuedEvent {
	return IssuedEvent{
		BaseEvent:     kernel.NewBaseEvent(EventIssued, inv.id, at),
		Code:          inv.code.String(),
		ClientID:      inv.clientID.String(),
		AmountInclTax: inv.totals.AmountInclTax.StringFixed(2),
		DueDate:       inv.dueDate.Format(time.DateOnly),
	}
}

func newPaymentRecordedEvent(inv *Invoice, p Payment) PaymentRecordedEvent {
	return PaymentRecordedEvent{
		BaseEvent: kernel.NewBaseEvent(EventPaymentRecorded, inv.id, p.paidAt),
		Code:      inv.code.String(),
		ClientID:  inv.clientID.String(),
		PaymentID: p.id.String(),
		Amount:    p.amount.StringFixed(2),
		Method:    p.method.String(),
		PaidTotal: inv.PaidTotal().StringFixed(2),
	}
}

func newPaidEvent(inv *Invoice, at time.Time) PaidEvent {
	return PaidEvent{
		BaseEvent:     kernel.NewBaseEvent(EventPaid, inv.id, at),
		Code:          inv.code.String(),
		ClientID:      inv.clientID.String(),
		AmountInclTax: inv.totals.AmountInclTax.StringFixed(2),
	}
}
