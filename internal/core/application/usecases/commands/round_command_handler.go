package commands

import (
	"context"

	"freight/internal/core/domain/model/round"
)

type AssignRoundCrewCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewAssignRoundCrewCommandHandler(uowFactory RoundUoWFactory) AssignRoundCrewCommandHandler {
	return AssignRoundCrewCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignRoundCrewCommandHandler) Handle(ctx context.Context, cmd AssignRoundCrewCommand) (*round.Round, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rounds := uow.RoundRepository()
	target, err := rounds.GetByCodeForUpdate(ctx, cmd.RoundCode())
	if err != nil {
		return nil, err
	}

	if err = checkCrew(ctx, uow, cmd.DriverID(), cmd.VehicleID()); err != nil {
		return nil, err
	}

	if err = target.AssignCrew(cmd.DriverID(), cmd.VehicleID()); err != nil {
		return nil, err
	}

	if err = rounds.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

type ChangeRoundStatusCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewChangeRoundStatusCommandHandler(uowFactory RoundUoWFactory) ChangeRoundStatusCommandHandler {
	return ChangeRoundStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeRoundStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRoundStatusCommand) (*round.Round, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rounds := uow.RoundRepository()
	target, err := rounds.GetByCodeForUpdate(ctx, cmd.RoundCode())
	if err != nil {
		return nil, err
	}

	if err = target.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = rounds.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

type DeleteRoundCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewDeleteRoundCommandHandler(uowFactory RoundUoWFactory) DeleteRoundCommandHandler {
	return DeleteRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteRoundCommandHandler) Handle(ctx context.Context, cmd DeleteRoundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rounds := uow.RoundRepository()
	target, err := rounds.GetByCodeForUpdate(ctx, cmd.RoundCode())
	if err != nil {
		return err
	}

	if err = rounds.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
