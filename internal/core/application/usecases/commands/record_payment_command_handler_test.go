package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func issuedInvoice(t *testing.T, owner *client.Client, net string) *invoice.Invoice {
	t.Helper()
	inv := newDraftInvoice(t, owner.ID())
	_, err := inv.AttachShipment(kernel.NewUUID(), dec(net), fixedNow)
	require.NoError(t, err)
	require.NoError(t, inv.ChangeStatus(invoice.Issued, fixedNow))
	return inv
}

func newRecordPaymentCommand(t *testing.T, code kernel.Code, amount string) commands.RecordPaymentCommand {
	t.Helper()
	cmd, err := commands.NewRecordPaymentCommand(code, kernel.NewUUID(), dec(amount), invoice.Wire, "TRX-1", "")
	require.NoError(t, err)
	return cmd
}

func TestNewRecordPaymentCommand_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-10"} {
		_, err := commands.NewRecordPaymentCommand(invoice.NewInvoiceCode(), kernel.NewUUID(), dec(amount),
			invoice.Cash, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid, amount)
		assert.Equal(t, "amount", errs.ParamName(err))
	}
}

func TestNewRecordPaymentCommand_RejectsSubCentAmount(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(invoice.NewInvoiceCode(), kernel.NewUUID(), dec("1189.995"),
		invoice.Cash, "", "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "amount", errs.ParamName(err))
}

func TestRecordPaymentCommandHandler_Handle_FullPaymentSettlesInvoice(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := issuedInvoice(t, owner, "1000.00")
	cmd := newRecordPaymentCommand(t, inv.Code(), "1190.00")

	invoices := new(MockInvoiceRepository)
	clients := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.BillingUoW])

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoices).Once(),
		uow.On("ClientRepository").Return(clients).Once(),
		invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once(),
		clients.On("GetForUpdate", ctx, owner.ID()).Return(owner, nil).Once(),
		invoices.On("Update", ctx, inv).Return(nil).Once(),
		clients.On("Update", ctx, owner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	paid, err := commands.NewRecordPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, invoice.Paid, paid.Status())
	assert.Equal(t, "1190.00", paid.AmountInclTax().StringFixed(2))
	assert.Equal(t, "-1190.00", owner.Balance().StringFixed(2))
	uow.AssertExpectations(t)
	invoices.AssertExpectations(t)
	clients.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_PartialPaymentKeepsIssued(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := issuedInvoice(t, owner, "1000.00")
	cmd := newRecordPaymentCommand(t, inv.Code(), "1189.99")

	invoices := new(MockInvoiceRepository)
	clients := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.BillingUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoices)
	uow.On("ClientRepository").Return(clients)
	invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	clients.On("GetForUpdate", ctx, owner.ID()).Return(owner, nil).Once()
	invoices.On("Update", ctx, inv).Return(nil).Once()
	clients.On("Update", ctx, owner).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	result, err := commands.NewRecordPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, invoice.Issued, result.Status())
	assert.Equal(t, "0.01", result.Outstanding().StringFixed(2))
}

func TestRecordPaymentCommandHandler_Handle_CancelledInvoice(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := issuedInvoice(t, owner, "10.00")
	require.NoError(t, inv.ChangeStatus(invoice.Cancelled, fixedNow))
	cmd := newRecordPaymentCommand(t, inv.Code(), "5.00")

	invoices := new(MockInvoiceRepository)
	clients := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.BillingUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoices)
	uow.On("ClientRepository").Return(clients)
	invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	clients.On("GetForUpdate", ctx, owner.ID()).Return(owner, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewRecordPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.True(t, owner.Balance().IsZero())
	invoices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	clients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRecordPaymentCommandHandler_Handle_UnknownInvoice(t *testing.T) {
	ctx := t.Context()
	code := invoice.NewInvoiceCode()
	cmd := newRecordPaymentCommand(t, code, "5.00")

	invoices := new(MockInvoiceRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.BillingUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoices)
	uow.On("ClientRepository").Return(new(MockClientRepository))
	invoices.On("GetByCodeForUpdate", ctx, code).Return(nil, errs.NewObjectNotFoundError("invoice", code)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewRecordPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRecordPaymentCommandHandler_Handle_ClientUpdateFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := issuedInvoice(t, owner, "100.00")
	cmd := newRecordPaymentCommand(t, inv.Code(), "50.00")

	invoices := new(MockInvoiceRepository)
	clients := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.BillingUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoices)
	uow.On("ClientRepository").Return(clients)
	invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	clients.On("GetForUpdate", ctx, owner.ID()).Return(owner, nil).Once()
	invoices.On("Update", ctx, inv).Return(nil).Once()
	clients.On("Update", ctx, owner).Return(errors.New("update error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewRecordPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertCalled(t, "Rollback", ctx)
}
