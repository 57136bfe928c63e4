package cases

import (
	"fmt"

	"freight/internal/pkg/errs"
)

type ClaimType int

const (
	UnknownClaimType ClaimType = iota
	ClaimDelay
	ClaimQuality
	ClaimBilling
	ClaimOther
)

var claimTypeNames = map[ClaimType]string{
	ClaimDelay:   "DELAY",
	ClaimQuality: "QUALITY",
	ClaimBilling: "BILLING",
	ClaimOther:   "OTHER",
}

func ClaimTypes() []ClaimType {
	return []ClaimType{ClaimDelay, ClaimQuality, ClaimBilling, ClaimOther}
}

func ParseClaimType(value string) (ClaimType, error) {
	for _, t := range ClaimTypes() {
		if t.String() == value {
			return t, nil
		}
	}
	return UnknownClaimType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a claim type", value))
}

func (t ClaimType) String() string {
	if name, ok := claimTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t ClaimType) Validate() error {
	if _, ok := claimTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid claim type", t))
	}
	return nil
}

// ClaimStatus follows NEW -> IN_PROGRESS -> RESOLVED, with CANCELLED reachable
// from NEW and IN_PROGRESS.
type ClaimStatus int

const (
	UnknownClaimStatus ClaimStatus = iota
	ClaimNew
	ClaimInProgress
	ClaimResolved
	ClaimCancelled
)

var claimStatusNames = map[ClaimStatus]string{
	ClaimNew:        "NEW",
	ClaimInProgress: "IN_PROGRESS",
	ClaimResolved:   "RESOLVED",
	ClaimCancelled:  "CANCELLED",
}

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimNew:        {ClaimInProgress, ClaimCancelled},
	ClaimInProgress: {ClaimResolved, ClaimCancelled},
}

func ClaimStatuses() []ClaimStatus {
	return []ClaimStatus{ClaimNew, ClaimInProgress, ClaimResolved, ClaimCancelled}
}

func ParseClaimStatus(value string) (ClaimStatus, error) {
	for _, s := range ClaimStatuses() {
		if s.String() == value {
			return s, nil
		}
	}
	return UnknownClaimStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a claim status", value))
}

func (s ClaimStatus) String() string {
	if name, ok := claimStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s ClaimStatus) Validate() error {
	if _, ok := claimStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid claim status", s))
	}
	return nil
}

func (s ClaimStatus) ValidateTransition(to ClaimStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}
	for _, allowed := range claimTransitions[s] {
		if allowed == to {
			return nil
		}
	}
	return errs.NewInvalidStateErrorWithCause("claim", s.String(), "change status of",
		fmt.Errorf("%s cannot move to %s", s, to))
}
