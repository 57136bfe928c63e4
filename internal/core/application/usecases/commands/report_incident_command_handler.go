package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
)

// ReportIncidentCommandHandler stores an incident and applies its effect on
// the linked shipment in the same transaction: a lost parcel fails.
type ReportIncidentCommandHandler struct {
	uowFactory CaseUoWFactory
	policy     services.IncidentPolicy
}

func NewReportIncidentCommandHandler(uowFactory CaseUoWFactory) ReportIncidentCommandHandler {
	return ReportIncidentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewIncidentPolicy(),
	}
}

func (h ReportIncidentCommandHandler) Handle(ctx context.Context, cmd ReportIncidentCommand) (*cases.Incident, error) {
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

	var (
		linked     *shipment.Shipment
		shipmentID *kernel.UUID
		roundID    *kernel.UUID
	)

	if code := cmd.TrackingCode(); code != nil {
		found, err := uow.ShipmentRepository().GetByTrackingCodeForUpdate(ctx, *code)
		if err != nil {
			return nil, asInvalidReference("tracking_code", err)
		}
		linked = found
		id := found.ID()
		shipmentID = &id
	}

	if code := cmd.RoundCode(); code != nil {
		found, err := uow.RoundRepository().GetByCode(ctx, *code)
		if err != nil {
			return nil, asInvalidReference("round_code", err)
		}
		id := found.ID()
		roundID = &id
	}

	now := time.Now()
	incident, err := cases.NewIncident(cmd.IncidentID(), cmd.Type(), cmd.Description(), shipmentID, roundID, now)
	if err != nil {
		return nil, err
	}

	if err = uow.IncidentRepository().Add(ctx, incident); err != nil {
		return nil, err
	}

	if linked != nil {
		changed, policyErr := h.policy.Apply(incident, linked, now)
		if policyErr != nil {
			return nil, policyErr
		}
		if changed {
			if err = uow.ShipmentRepository().Update(ctx, linked); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return incident, nil
}
