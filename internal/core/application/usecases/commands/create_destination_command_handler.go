package commands

import (
	"context"

	"freight/internal/core/domain/model/tariff"
)

type CreateDestinationCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewCreateDestinationCommandHandler(uowFactory ReferenceUoWFactory) CreateDestinationCommandHandler {
	return CreateDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDestinationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDestinationCommand,
) (*tariff.Destination, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	destination, err := tariff.NewDestination(cmd.DestinationID(), cmd.City(), cmd.Country(), cmd.BaseRate())
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

	if err = uow.DestinationRepository().Add(ctx, destination); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return destination, nil
}
