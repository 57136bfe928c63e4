package commands

import (
	"context"

	"freight/internal/core/domain/model/tariff"
)

type CreateServiceTierCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewCreateServiceTierCommandHandler(uowFactory ReferenceUoWFactory) CreateServiceTierCommandHandler {
	return CreateServiceTierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateServiceTierCommandHandler) Handle(
	ctx context.Context,
	cmd CreateServiceTierCommand,
) (*tariff.ServiceTier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tier, err := tariff.NewServiceTier(cmd.ServiceTierID(), cmd.Name(), cmd.WeightRate(), cmd.VolumeRate())
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

	if err = uow.ServiceTierRepository().Add(ctx, tier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tier, nil
}
