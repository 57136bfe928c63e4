package round

import (
	"errors"
	"slices"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	codePrefix = "T"
	codeLength = 8
)

var ErrRoundIsNotConstructed = errors.New("Round must be created via NewRound constructor")

// NewRoundCode returns a random round code candidate.
func NewRoundCode() kernel.Code {
	return kernel.GenerateCode(codePrefix, codeLength)
}

// Round is an ordered batch of shipments delivered on one day, optionally by an
// assigned driver and vehicle. It references shipments; it never owns them.
type Round struct {
	id          kernel.UUID
	code        kernel.Code
	date        time.Time
	driverID    *kernel.UUID
	vehicleID   *kernel.UUID
	status      Status
	comment     string
	createdAt   time.Time
	memberships []Membership

	guard guard.ConstructorGuard
}

func NewRound(id kernel.UUID, code kernel.Code, date time.Time, comment string, createdAt time.Time) (*Round, error) {
	r := &Round{
		status:    Planned,
		comment:   strings.TrimSpace(comment),
		createdAt: createdAt.UTC().Truncate(time.Microsecond),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		code.Validate(),
		validateDate(date),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.code = code
	r.date = truncateToDay(date)
	return r, nil
}

func RestoreRound(
	id kernel.UUID,
	code kernel.Code,
	date time.Time,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	status Status,
	comment string,
	createdAt time.Time,
	memberships []Membership,
) *Round {
	ordered := slices.Clone(memberships)
	slices.SortFunc(ordered, func(a, b Membership) int { return a.position - b.position })

	return &Round{
		id:          id,
		code:        code,
		date:        truncateToDay(date),
		driverID:    driverID,
		vehicleID:   vehicleID,
		status:      status,
		comment:     comment,
		createdAt:   createdAt.UTC(),
		memberships: ordered,
		guard:       guard.NewConstructorGuard(),
	}
}

func (r *Round) Validate() error {
	if r == nil {
		return ErrRoundIsNotConstructed
	}
	return r.guard.Validate(ErrRoundIsNotConstructed)
}

func (r *Round) ID() kernel.UUID           { return r.id }
func (r *Round) Code() kernel.Code         { return r.code }
func (r *Round) Date() time.Time           { return r.date }
func (r *Round) DriverID() *kernel.UUID    { return r.driverID }
func (r *Round) VehicleID() *kernel.UUID   { return r.vehicleID }
func (r *Round) Status() Status            { return r.status }
func (r *Round) Comment() string           { return r.comment }
func (r *Round) CreatedAt() time.Time      { return r.createdAt }
func (r *Round) Memberships() []Membership { return slices.Clone(r.memberships) }

// Contains reports whether shipmentID is currently a member of the round.
func (r *Round) Contains(shipmentID kernel.UUID) bool {
	return slices.ContainsFunc(r.memberships, func(m Membership) bool {
		return m.shipmentID.IsEqual(shipmentID)
	})
}

// AddShipment appends shipmentID at the current max position + 1. Removing the
// last member frees its position for the next addition.
func (r *Round) AddShipment(shipmentID kernel.UUID, at time.Time) (Membership, error) {
	if err := shipmentID.Validate(); err != nil {
		return Membership{}, err
	}
	if r.status.IsTerminal() {
		return Membership{}, errs.NewInvalidStateError("round", r.status.String(), "add shipment to")
	}
	if r.Contains(shipmentID) {
		return Membership{}, errs.NewConflictError("round membership", shipmentID.String())
	}

	membership := Membership{
		shipmentID: shipmentID,
		position:   r.maxPosition() + 1,
		addedAt:    at.UTC().Truncate(time.Microsecond),
	}
	r.memberships = append(r.memberships, membership)
	return membership, nil
}

// RemoveShipment drops a membership; remaining positions are kept as they are.
func (r *Round) RemoveShipment(shipmentID kernel.UUID) error {
	if r.status.IsTerminal() {
		return errs.NewInvalidStateError("round", r.status.String(), "remove shipment from")
	}

	idx := slices.IndexFunc(r.memberships, func(m Membership) bool {
		return m.shipmentID.IsEqual(shipmentID)
	})
	if idx < 0 {
		return errs.NewObjectNotFoundError("round membership", shipmentID.String())
	}

	r.memberships = slices.Delete(r.memberships, idx, idx+1)
	return nil
}

// AssignCrew sets or clears (nil) the driver and vehicle.
func (r *Round) AssignCrew(driverID, vehicleID *kernel.UUID) error {
	if r.status.IsTerminal() {
		return errs.NewInvalidStateError("round", r.status.String(), "assign crew to")
	}
	for _, id := range []*kernel.UUID{driverID, vehicleID} {
		if id != nil {
			if err := id.Validate(); err != nil {
				return err
			}
		}
	}

	r.driverID = driverID
	r.vehicleID = vehicleID
	return nil
}

func (r *Round) ChangeStatus(to Status) error {
	if err := r.status.ValidateTransition(to); err != nil {
		return err
	}
	r.status = to
	return nil
}

func (r *Round) maxPosition() int {
	highest := 0
	for _, m := range r.memberships {
		highest = max(highest, m.position)
	}
	return highest
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
