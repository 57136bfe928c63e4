package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/round"
	"freight/internal/pkg/errs"
)

// AddShipmentToRoundCommandHandler enforces that a shipment sits in at most
// one active round. Both the round row and the shipment row are locked, so
// two operators adding the same shipment to different rounds serialize on
// the shipment and the second one sees the first membership.
type AddShipmentToRoundCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewAddShipmentToRoundCommandHandler(uowFactory RoundUoWFactory) AddShipmentToRoundCommandHandler {
	return AddShipmentToRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddShipmentToRoundCommandHandler) Handle(
	ctx context.Context,
	cmd AddShipmentToRoundCommand,
) (round.Membership, error) {
	if err := cmd.Validate(); err != nil {
		return round.Membership{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return round.Membership{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rounds := uow.RoundRepository()
	target, err := rounds.GetByCodeForUpdate(ctx, cmd.RoundCode())
	if err != nil {
		return round.Membership{}, err
	}

	member, err := uow.ShipmentRepository().GetByTrackingCodeForUpdate(ctx, cmd.TrackingCode())
	if err != nil {
		return round.Membership{}, asInvalidReference("tracking_code", err)
	}
	if member.Status().IsTerminal() {
		return round.Membership{}, errs.NewInvalidStateError("shipment", member.Status().String(), "add to a round")
	}

	current, err := rounds.FindActiveByShipment(ctx, member.ID())
	switch {
	case err == nil && !current.ID().IsEqual(target.ID()):
		return round.Membership{}, errs.NewConflictErrorWithCause("tracking_code", cmd.TrackingCode(),
			errors.New("shipment already belongs to active round "+current.Code().String()))
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return round.Membership{}, err
	}

	membership, err := target.AddShipment(member.ID(), time.Now())
	if err != nil {
		return round.Membership{}, err
	}

	if err = rounds.Update(ctx, target); err != nil {
		return round.Membership{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return round.Membership{}, err
	}

	return membership, nil
}

type RemoveShipmentFromRoundCommandHandler struct {
	uowFactory RoundUoWFactory
}

func NewRemoveShipmentFromRoundCommandHandler(uowFactory RoundUoWFactory) RemoveShipmentFromRoundCommandHandler {
	return RemoveShipmentFromRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveShipmentFromRoundCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentFromRoundCommand) error {
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

	member, err := uow.ShipmentRepository().GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}

	if err = target.RemoveShipment(member.ID()); err != nil {
		return err
	}

	if err = rounds.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
