package round

import (
	"fmt"

	"freight/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Planned
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Planned:    "PLANNED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Planned:    {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
	}
}

func Statuses() []Status {
	return []Status{Planned, InProgress, Completed, Cancelled}
}

func ParseStatus(value string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a round status", value))
}

func (s Status) Validate() error {
	if s < Planned || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the round is finished; terminal rounds accept no
// membership or crew change.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether memberships of this round still count against the
// one-active-round-per-shipment rule.
func (s Status) IsActive() bool {
	return s != Cancelled
}

func (s Status) ValidateTransition(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == to {
			return nil
		}
	}
	return errs.NewInvalidStateErrorWithCause("round", s.String(), "change status of",
		fmt.Errorf("%s cannot move to %s", s, to))
}
