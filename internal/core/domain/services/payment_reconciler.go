package services

import (
	"fmt"

	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/pkg/errs"
)

// PaymentReconciler records a payment on an invoice and settles the same
// amount on the owning client's balance. Both aggregates must be loaded under
// lock and saved in the same transaction by the caller.
type PaymentReconciler struct{}

func NewPaymentReconciler() PaymentReconciler {
	return PaymentReconciler{}
}

func (PaymentReconciler) Reconcile(inv *invoice.Invoice, owner *client.Client, payment invoice.Payment) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if err := owner.Validate(); err != nil {
		return err
	}
	if !inv.ClientID().IsEqual(owner.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("client",
			fmt.Errorf("invoice %s belongs to client %s, not %s", inv.Code(), inv.ClientID(), owner.ID()))
	}

	if err := inv.RecordPayment(payment); err != nil {
		return err
	}

	return owner.SettlePayment(payment.Amount())
}
