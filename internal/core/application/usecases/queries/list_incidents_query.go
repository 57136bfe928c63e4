package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListIncidentsQueryIsNotConstructed = errors.New(
	"ListIncidentsQuery must be created via NewListIncidentsQuery constructor",
)

// ListIncidentsQuery lists incidents, most recently reported first.
type ListIncidentsQuery struct {
	status     *cases.IncidentStatus
	kind       *cases.IncidentType
	shipmentID *kernel.UUID
	page       Page

	guard guard.ConstructorGuard
}

func NewListIncidentsQuery(
	status *cases.IncidentStatus,
	kind *cases.IncidentType,
	shipmentID *kernel.UUID,
	page Page,
) (ListIncidentsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListIncidentsQuery{}, err
		}
	}
	if kind != nil {
		if err := kind.Validate(); err != nil {
			return ListIncidentsQuery{}, err
		}
	}
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return ListIncidentsQuery{}, err
		}
	}

	return ListIncidentsQuery{
		status:     status,
		kind:       kind,
		shipmentID: shipmentID,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListIncidentsQuery) Validate() error {
	return q.guard.Validate(ErrListIncidentsQueryIsNotConstructed)
}

func (q ListIncidentsQuery) Status() *cases.IncidentStatus { return q.status }
func (q ListIncidentsQuery) Type() *cases.IncidentType     { return q.kind }
func (q ListIncidentsQuery) ShipmentID() *kernel.UUID      { return q.shipmentID }
func (q ListIncidentsQuery) Page() Page                    { return q.page }

type IncidentResponse struct {
	ID           kernel.UUID
	Type         string
	Description  string
	Status       string
	Resolution   string
	ResolvedAt   *time.Time
	ShipmentID   *kernel.UUID
	TrackingCode string
	RoundID      *kernel.UUID
	RoundCode    string
	ReportedAt   time.Time
}
