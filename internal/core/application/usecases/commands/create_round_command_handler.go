package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
)

type CreateRoundCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewCreateRoundCommandHandler(uowFactory RoundUoWFactory) CreateRoundCommandHandler {
	return CreateRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRoundCommandHandler) Handle(ctx context.Context, cmd CreateRoundCommand) (*round.Round, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *round.Round
	err := withFreshCode(ctx, round.NewRoundCode, func(code kernel.Code) error {
		var err error
		created, err = h.create(ctx, cmd, code)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (h CreateRoundCommandHandler) create(ctx context.Context, cmd CreateRoundCommand, code kernel.Code) (*round.Round, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := checkCrew(ctx, uow, cmd.DriverID(), cmd.VehicleID()); err != nil {
		return nil, err
	}

	created, err := round.NewRound(cmd.RoundID(), code, cmd.Date(), cmd.Comment(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = created.AssignCrew(cmd.DriverID(), cmd.VehicleID()); err != nil {
		return nil, err
	}

	if err = uow.RoundRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// checkCrew verifies that the referenced driver and vehicle exist.
func checkCrew(ctx context.Context, repos FleetRepoFactory, driverID, vehicleID *kernel.UUID) error {
	if driverID != nil {
		if _, err := repos.DriverRepository().Get(ctx, *driverID); err != nil {
			return asInvalidReference("driver_id", err)
		}
	}
	if vehicleID != nil {
		if _, err := repos.VehicleRepository().Get(ctx, *vehicleID); err != nil {
			return asInvalidReference("vehicle_id", err)
		}
	}
	return nil
}
