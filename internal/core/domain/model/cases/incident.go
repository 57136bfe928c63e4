package cases

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrIncidentIsNotConstructed = errors.New("Incident must be created via NewIncident constructor")

// Incident is an operational problem, optionally tied to a shipment and/or a round.
type Incident struct {
	id          kernel.UUID
	kind        IncidentType
	description string
	status      IncidentStatus
	resolution  string
	resolvedAt  *time.Time
	shipmentID  *kernel.UUID
	roundID     *kernel.UUID
	reportedAt  time.Time

	guard guard.ConstructorGuard
}

func NewIncident(
	id kernel.UUID,
	kind IncidentType,
	description string,
	shipmentID *kernel.UUID,
	roundID *kernel.UUID,
	reportedAt time.Time,
) (*Incident, error) {
	description = strings.TrimSpace(description)

	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		requireText("description", description),
		validateOptional(shipmentID),
		validateOptional(roundID),
	); err != nil {
		return nil, err
	}

	return &Incident{
		id:          id,
		kind:        kind,
		description: description,
		status:      IncidentOpen,
		shipmentID:  shipmentID,
		roundID:     roundID,
		reportedAt:  reportedAt.UTC().Truncate(time.Microsecond),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreIncident(
	id kernel.UUID,
	kind IncidentType,
	description string,
	status IncidentStatus,
	resolution string,
	resolvedAt *time.Time,
	shipmentID *kernel.UUID,
	roundID *kernel.UUID,
	reportedAt time.Time,
) *Incident {
	return &Incident{
		id:          id,
		kind:        kind,
		description: description,
		status:      status,
		resolution:  resolution,
		resolvedAt:  resolvedAt,
		shipmentID:  shipmentID,
		roundID:     roundID,
		reportedAt:  reportedAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}
}

func (i *Incident) Validate() error {
	if i == nil {
		return ErrIncidentIsNotConstructed
	}
	return i.guard.Validate(ErrIncidentIsNotConstructed)
}

func (i *Incident) ID() kernel.UUID          { return i.id }
func (i *Incident) Type() IncidentType       { return i.kind }
func (i *Incident) Description() string      { return i.description }
func (i *Incident) Status() IncidentStatus   { return i.status }
func (i *Incident) Resolution() string       { return i.resolution }
func (i *Incident) ResolvedAt() *time.Time   { return i.resolvedAt }
func (i *Incident) ShipmentID() *kernel.UUID { return i.shipmentID }
func (i *Incident) RoundID() *kernel.UUID    { return i.roundID }
func (i *Incident) ReportedAt() time.Time    { return i.reportedAt }

// ChangeStatus advances the incident one step. Moving to RESOLVED requires a
// resolution text, stored together with the resolution time.
func (i *Incident) ChangeStatus(to IncidentStatus, resolution string, at time.Time) error {
	if err := i.status.ValidateTransition(to); err != nil {
		return err
	}

	if to == IncidentResolved {
		resolution = strings.TrimSpace(resolution)
		if resolution == "" {
			return errs.NewValueIsRequiredError("resolution")
		}
		resolvedAt := at.UTC().Truncate(time.Microsecond)
		i.resolution = resolution
		i.resolvedAt = &resolvedAt
	}

	i.status = to
	return nil
}

func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func validateOptional(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
