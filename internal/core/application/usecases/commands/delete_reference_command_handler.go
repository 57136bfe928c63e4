package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

type DeleteReferenceCommandHandler struct {
	uowFactory ReferenceUoWFactory
}

func NewDeleteReferenceCommandHandler(uowFactory ReferenceUoWFactory) DeleteReferenceCommandHandler {
	return DeleteReferenceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteReferenceCommandHandler) Handle(ctx context.Context, cmd DeleteReferenceCommand) error {
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

	var err error
	switch cmd.Kind() {
	case DestinationReference:
		err = uow.DestinationRepository().Delete(ctx, cmd.ID())
	case ServiceTierReference:
		err = uow.ServiceTierRepository().Delete(ctx, cmd.ID())
	case DriverReference:
		err = uow.DriverRepository().Delete(ctx, cmd.ID())
	case VehicleReference:
		err = uow.VehicleRepository().Delete(ctx, cmd.ID())
	default:
		err = errs.NewValueIsInvalidError("kind")
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
