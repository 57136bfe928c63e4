package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/cases"
)

type ChangeClaimStatusCommandHandler struct {
	uowFactory CaseUoWFactory
}

func NewChangeClaimStatusCommandHandler(uowFactory CaseUoWFactory) ChangeClaimStatusCommandHandler {
	return ChangeClaimStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeClaimStatusCommandHandler) Handle(ctx context.Context, cmd ChangeClaimStatusCommand) (*cases.Claim, error) {
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

	repo := uow.ClaimRepository()
	claim, err := repo.GetByCodeForUpdate(ctx, cmd.ClaimCode())
	if err != nil {
		return nil, err
	}

	if err = claim.ChangeStatus(cmd.Status(), cmd.Response(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, claim); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claim, nil
}
