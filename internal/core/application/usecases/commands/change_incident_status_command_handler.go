package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/cases"
)

type ChangeIncidentStatusCommandHandler struct {
	uowFactory CaseUoWFactory
}

func NewChangeIncidentStatusCommandHandler(uowFactory CaseUoWFactory) ChangeIncidentStatusCommandHandler {
	return ChangeIncidentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeIncidentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeIncidentStatusCommand,
) (*cases.Incident, error) {
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

	repo := uow.IncidentRepository()
	incident, err := repo.GetForUpdate(ctx, cmd.IncidentID())
	if err != nil {
		return nil, err
	}

	if err = incident.ChangeStatus(cmd.Status(), cmd.Resolution(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, incident); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return incident, nil
}
