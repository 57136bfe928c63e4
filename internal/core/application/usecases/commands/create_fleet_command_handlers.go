package commands

import (
	"context"

	"freight/internal/core/domain/model/fleet"
)

type CreateDriverCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory ReferenceUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*fleet.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	driver, err := fleet.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseNumber())
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

	if err = uow.DriverRepository().Add(ctx, driver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}

type CreateVehicleCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory ReferenceUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*fleet.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	vehicle, err := fleet.NewVehicle(cmd.VehicleID(), cmd.Registration(), cmd.Kind(), cmd.Capacity())
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

	if err = uow.VehicleRepository().Add(ctx, vehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return vehicle, nil
}
