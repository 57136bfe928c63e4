package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReportIncidentCommand_RequiresDescription(t *testing.T) {
	_, err := commands.NewReportIncidentCommand(kernel.NewUUID(), cases.IncidentDelay, "   ", nil, nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "description", errs.ParamName(err))
}

func TestReportIncidentCommandHandler_Handle_LossFailsShipment(t *testing.T) {
	ctx := t.Context()
	lost := newShipment(t, kernel.NewUUID(), "75.00")
	code := lost.TrackingCode()
	cmd, err := commands.NewReportIncidentCommand(kernel.NewUUID(), cases.IncidentLoss, "parcel missing at hub", &code, nil)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	incidents := new(MockIncidentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.CaseUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments)
	uow.On("IncidentRepository").Return(incidents)
	mock.InOrder(
		shipments.On("GetByTrackingCodeForUpdate", ctx, code).Return(lost, nil).Once(),
		incidents.On("Add", ctx, mock.AnythingOfType("*cases.Incident")).Return(nil).Once(),
		shipments.On("Update", ctx, lost).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	incident, err := commands.NewReportIncidentCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cases.IncidentOpen, incident.Status())
	require.NotNil(t, incident.ShipmentID())
	assert.True(t, incident.ShipmentID().IsEqual(lost.ID()))
	assert.Equal(t, shipment.Failed, lost.Status())
	shipments.AssertExpectations(t)
	incidents.AssertExpectations(t)
}

func TestReportIncidentCommandHandler_Handle_DelayLeavesShipment(t *testing.T) {
	ctx := t.Context()
	late := newShipment(t, kernel.NewUUID(), "75.00")
	code := late.TrackingCode()
	cmd, err := commands.NewReportIncidentCommand(kernel.NewUUID(), cases.IncidentDelay, "truck broke down", &code, nil)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	incidents := new(MockIncidentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.CaseUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments)
	uow.On("IncidentRepository").Return(incidents)
	shipments.On("GetByTrackingCodeForUpdate", ctx, code).Return(late, nil).Once()
	incidents.On("Add", ctx, mock.AnythingOfType("*cases.Incident")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewReportIncidentCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, late.Status())
	shipments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReportIncidentCommandHandler_Handle_UnknownRound(t *testing.T) {
	ctx := t.Context()
	code := round.NewRoundCode()
	cmd, err := commands.NewReportIncidentCommand(kernel.NewUUID(), cases.IncidentOther, "road closed", nil, &code)
	require.NoError(t, err)

	rounds := new(MockRoundRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.CaseUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RoundRepository").Return(rounds)
	rounds.On("GetByCode", ctx, code).Return(nil, errs.NewObjectNotFoundError("round", code)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewReportIncidentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "round_code", errs.ParamName(err))
	uow.AssertNotCalled(t, "Commit", ctx)
}
