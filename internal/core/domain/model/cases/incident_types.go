package cases

import (
	"fmt"

	"freight/internal/pkg/errs"
)

type IncidentType int

const (
	UnknownIncidentType IncidentType = iota
	IncidentDelay
	IncidentLoss
	IncidentDamage
	IncidentOther
)

var incidentTypeNames = map[IncidentType]string{
	IncidentDelay:  "DELAY",
	IncidentLoss:   "LOSS",
	IncidentDamage: "DAMAGE",
	IncidentOther:  "OTHER",
}

func IncidentTypes() []IncidentType {
	return []IncidentType{IncidentDelay, IncidentLoss, IncidentDamage, IncidentOther}
}

func ParseIncidentType(value string) (IncidentType, error) {
	for _, t := range IncidentTypes() {
		if t.String() == value {
			return t, nil
		}
	}
	return UnknownIncidentType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not an incident type", value))
}

func (t IncidentType) String() string {
	if name, ok := incidentTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t IncidentType) Validate() error {
	if _, ok := incidentTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid incident type", t))
	}
	return nil
}

// IncidentStatus follows OPEN -> IN_PROGRESS -> RESOLVED -> CLOSED, one step at a time.
type IncidentStatus int

const (
	UnknownIncidentStatus IncidentStatus = iota
	IncidentOpen
	IncidentInProgress
	IncidentResolved
	IncidentClosed
)

var incidentStatusNames = map[IncidentStatus]string{
	IncidentOpen:       "OPEN",
	IncidentInProgress: "IN_PROGRESS",
	IncidentResolved:   "RESOLVED",
	IncidentClosed:     "CLOSED",
}

func IncidentStatuses() []IncidentStatus {
	return []IncidentStatus{IncidentOpen, IncidentInProgress, IncidentResolved, IncidentClosed}
}

func ParseIncidentStatus(value string) (IncidentStatus, error) {
	for _, s := range IncidentStatuses() {
		if s.String() == value {
			return s, nil
		}
	}
	return UnknownIncidentStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not an incident status", value))
}

func (s IncidentStatus) String() string {
	if name, ok := incidentStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s IncidentStatus) Validate() error {
	if _, ok := incidentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid incident status", s))
	}
	return nil
}

func (s IncidentStatus) ValidateTransition(to IncidentStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if s != IncidentClosed && to == s+1 {
		return nil
	}
	return errs.NewInvalidStateErrorWithCause("incident", s.String(), "change status of",
		fmt.Errorf("%s cannot move to %s", s, to))
}
