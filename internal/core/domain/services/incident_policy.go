package services

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/shipment"
)

// IncidentLocation is recorded on tracking events created by incidents.
const IncidentLocation = "incident report"

// IncidentPolicy derives shipment status changes from reported incidents: a
// lost parcel fails its shipment. Other incident types leave the lifecycle
// untouched.
type IncidentPolicy struct{}

func NewIncidentPolicy() IncidentPolicy {
	return IncidentPolicy{}
}

// Apply reports whether the shipment was changed.
func (IncidentPolicy) Apply(incident *cases.Incident, s *shipment.Shipment, at time.Time) (bool, error) {
	if err := incident.Validate(); err != nil {
		return false, err
	}
	if err := s.Validate(); err != nil {
		return false, err
	}
	if incident.Type() != cases.IncidentLoss || s.Status().IsTerminal() {
		return false, nil
	}

	comment := fmt.Sprintf("incident %s: %s", incident.ID(), incident.Description())
	if _, err := s.ChangeStatus(shipment.Failed, IncidentLocation, comment, at); err != nil {
		return false, err
	}
	return true, nil
}
