package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/services"
)

// RecordPaymentCommandHandler inserts a payment, re-derives the paid status
// and decrements the client balance as one transaction. The invoice row is
// locked first and the client row second; every writer of either follows
// that order.
type RecordPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
	reconciler services.PaymentReconciler
}

func NewRecordPaymentCommandHandler(uowFactory BillingUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewPaymentReconciler(),
	}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	payment, err := invoice.NewPayment(cmd.PaymentID(), cmd.Amount(), cmd.Method(), cmd.Reference(), cmd.Comment(),
		time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices := uow.InvoiceRepository()
	clients := uow.ClientRepository()

	inv, err := invoices.GetByCodeForUpdate(ctx, cmd.InvoiceCode())
	if err != nil {
		return nil, err
	}

	owner, err := clients.GetForUpdate(ctx, inv.ClientID())
	if err != nil {
		return nil, err
	}

	if err = h.reconciler.Reconcile(inv, owner, payment); err != nil {
		return nil, err
	}

	if err = invoices.Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = clients.Update(ctx, owner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}
