package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingMocks struct {
	invoices  *MockInvoiceRepository
	shipments *MockShipmentRepository
	uow       *MockUoW
	factory   *MockUoWFactory[commands.BillingUoW]
}

func newBillingMocks(t *testing.T) billingMocks {
	t.Helper()
	ctx := t.Context()
	m := billingMocks{
		invoices:  new(MockInvoiceRepository),
		shipments: new(MockShipmentRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory[commands.BillingUoW]),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("InvoiceRepository").Return(m.invoices)
	m.uow.On("ShipmentRepository").Return(m.shipments)
	m.uow.On("Rollback", ctx).Return(nil).Once()
	return m
}

func attachCommand(t *testing.T, inv *invoice.Invoice, trackingCode kernel.Code) commands.AttachShipmentCommand {
	t.Helper()
	cmd, err := commands.NewAttachShipmentCommand(inv.Code(), trackingCode)
	require.NoError(t, err)
	return cmd
}

func TestAttachShipmentCommandHandler_Handle_RecomputesTotals(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := newDraftInvoice(t, owner.ID())
	billed := newShipment(t, owner.ID(), "1000.00")
	m := newBillingMocks(t)

	m.invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	m.shipments.On("GetByTrackingCodeForUpdate", ctx, billed.TrackingCode()).Return(billed, nil).Once()
	m.invoices.On("FindActiveByShipment", ctx, billed.ID()).
		Return(nil, errs.NewObjectNotFoundError("invoice", billed.ID())).Once()
	m.invoices.On("Update", ctx, inv).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	result, err := commands.NewAttachShipmentCommandHandler(m.factory).Handle(ctx, attachCommand(t, inv, billed.TrackingCode()))

	require.NoError(t, err)
	assert.Equal(t, "1000.00", result.AmountExclTax().StringFixed(2))
	assert.Equal(t, "190.00", result.TaxAmount().StringFixed(2))
	assert.Equal(t, "1190.00", result.AmountInclTax().StringFixed(2))
	m.uow.AssertExpectations(t)
}

func TestAttachShipmentCommandHandler_Handle_SameShipmentTwice(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := newDraftInvoice(t, owner.ID())
	billed := newShipment(t, owner.ID(), "40.00")
	_, err := inv.AttachShipment(billed.ID(), billed.TotalAmount(), fixedNow)
	require.NoError(t, err)
	m := newBillingMocks(t)

	m.invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	m.shipments.On("GetByTrackingCodeForUpdate", ctx, billed.TrackingCode()).Return(billed, nil).Once()
	m.invoices.On("FindActiveByShipment", ctx, billed.ID()).Return(inv, nil).Once()

	_, err = commands.NewAttachShipmentCommandHandler(m.factory).Handle(ctx, attachCommand(t, inv, billed.TrackingCode()))

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "40.00", inv.AmountExclTax().StringFixed(2))
	m.invoices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAttachShipmentCommandHandler_Handle_BilledElsewhere(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := newDraftInvoice(t, owner.ID())
	other := newDraftInvoice(t, owner.ID())
	billed := newShipment(t, owner.ID(), "40.00")
	m := newBillingMocks(t)

	m.invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	m.shipments.On("GetByTrackingCodeForUpdate", ctx, billed.TrackingCode()).Return(billed, nil).Once()
	m.invoices.On("FindActiveByShipment", ctx, billed.ID()).Return(other, nil).Once()

	_, err := commands.NewAttachShipmentCommandHandler(m.factory).Handle(ctx, attachCommand(t, inv, billed.TrackingCode()))

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), other.Code().String())
}

func TestAttachShipmentCommandHandler_Handle_IssuedInvoiceIsFrozen(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := issuedInvoice(t, owner, "10.00")
	billed := newShipment(t, owner.ID(), "40.00")
	m := newBillingMocks(t)

	m.invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	m.shipments.On("GetByTrackingCodeForUpdate", ctx, billed.TrackingCode()).Return(billed, nil).Once()
	m.invoices.On("FindActiveByShipment", ctx, billed.ID()).
		Return(nil, errs.NewObjectNotFoundError("invoice", billed.ID())).Once()

	_, err := commands.NewAttachShipmentCommandHandler(m.factory).Handle(ctx, attachCommand(t, inv, billed.TrackingCode()))

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, "10.00", inv.AmountExclTax().StringFixed(2))
}

func TestAttachShipmentCommandHandler_Handle_ForeignShipment(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := newDraftInvoice(t, owner.ID())
	billed := newShipment(t, kernel.NewUUID(), "40.00")
	m := newBillingMocks(t)

	m.invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	m.shipments.On("GetByTrackingCodeForUpdate", ctx, billed.TrackingCode()).Return(billed, nil).Once()

	_, err := commands.NewAttachShipmentCommandHandler(m.factory).Handle(ctx, attachCommand(t, inv, billed.TrackingCode()))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "tracking_code", errs.ParamName(err))
}

func TestDetachShipmentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	owner := newClient(t)
	inv := newDraftInvoice(t, owner.ID())
	billed := newShipment(t, owner.ID(), "40.00")
	_, err := inv.AttachShipment(billed.ID(), billed.TotalAmount(), fixedNow)
	require.NoError(t, err)
	m := newBillingMocks(t)

	m.invoices.On("GetByCodeForUpdate", ctx, inv.Code()).Return(inv, nil).Once()
	m.shipments.On("GetByTrackingCode", ctx, billed.TrackingCode()).Return(billed, nil).Once()
	m.invoices.On("Update", ctx, inv).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewDetachShipmentCommand(inv.Code(), billed.TrackingCode())
	require.NoError(t, err)

	result, err := commands.NewDetachShipmentCommandHandler(m.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.AmountExclTax().IsZero())
	assert.Empty(t, result.Lines())
}
