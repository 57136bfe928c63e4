package commands

import (
	"context"

	"freight/internal/core/domain/model/tariff"
)

type ChangeServiceTierRatesCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewChangeServiceTierRatesCommandHandler(uowFactory ReferenceUoWFactory) ChangeServiceTierRatesCommandHandler {
	return ChangeServiceTierRatesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeServiceTierRatesCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeServiceTierRatesCommand,
) (*tariff.ServiceTier, error) {
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

	repo := uow.ServiceTierRepository()
	tier, err := repo.Get(ctx, cmd.ServiceTierID())
	if err != nil {
		return nil, err
	}

	if err = tier.ChangeRates(cmd.WeightRate(), cmd.VolumeRate()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, tier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tier, nil
}
