package commands

import (
	"context"

	"freight/internal/core/domain/model/tariff"
)

type ChangeDestinationRateCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewChangeDestinationRateCommandHandler(uowFactory ReferenceUoWFactory) ChangeDestinationRateCommandHandler {
	return ChangeDestinationRateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeDestinationRateCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDestinationRateCommand,
) (*tariff.Destination, error) {
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

	repo := uow.DestinationRepository()
	destination, err := repo.Get(ctx, cmd.DestinationID())
	if err != nil {
		return nil, err
	}

	if err = destination.ChangeBaseRate(cmd.BaseRate()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, destination); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return destination, nil
}
