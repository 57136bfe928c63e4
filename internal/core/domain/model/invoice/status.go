package invoice

import (
	"fmt"

	"freight/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Draft
	Issued
	Paid
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Draft:     "DRAFT",
		Issued:    "ISSUED",
		Paid:      "PAID",
		Cancelled: "CANCELLED",
	}
}

// getManualTransitions lists the moves an operator may request. PAID is absent:
// it is derived from recorded payments.
func getManualTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:  {Issued, Cancelled},
		Issued: {Cancelled},
	}
}

func Statuses() []Status {
	return []Status{Draft, Issued, Paid, Cancelled}
}

func ParseStatus(value string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an invoice status", value))
}

func (s Status) Validate() error {
	if s < Draft || s > Cancelled {
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

// LinesAreMutable reports whether shipment lines and the tax rate may change.
func (s Status) LinesAreMutable() bool {
	return s == Draft
}

func (s Status) ValidateTransition(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	for _, allowed := range getManualTransitions()[s] {
		if allowed == to {
			return nil
		}
	}
	return errs.NewInvalidStateErrorWithCause("invoice", s.String(), "change status of",
		fmt.Errorf("%s cannot move to %s", s, to))
}
