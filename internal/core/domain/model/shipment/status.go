package shipment

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the position of a shipment in its delivery lifecycle.
type Status int

const (
	Unknown Status = iota

	// InTransit is the initial state of every shipment.
	InTransit

	SortingCenter

	OutForDelivery

	// Delivered is terminal.
	Delivered

	// Failed is terminal and reachable from any non-terminal state.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		InTransit:      "IN_TRANSIT",
		SortingCenter:  "SORTING_CENTER",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Failed:         "FAILED",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{InTransit, SortingCenter, OutForDelivery, Delivered, Failed}
}

// ParseStatus converts the wire name of a status.
func ParseStatus(value string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipment status", value))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Failed {
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

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// ValidateTransition enforces the forward-only lifecycle: a shipment may move to
// the same or a later stage of the delivery path, or fail from any
// non-terminal state. Terminal states accept nothing.
func (s Status) ValidateTransition(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewInvalidStateErrorWithCause("shipment", s.String(), "change status of",
			fmt.Errorf("%s is terminal", s))
	}

	if to == Failed || to >= s {
		return nil
	}

	return errs.NewInvalidStateErrorWithCause("shipment", s.String(), "change status of",
		fmt.Errorf("%s cannot go back to %s", s, to))
}
