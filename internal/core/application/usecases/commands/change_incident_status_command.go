package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrChangeIncidentStatusCommandIsNotConstructed = errors.New(
	"ChangeIncidentStatusCommand must be created via NewChangeIncidentStatusCommand constructor",
)

// ChangeIncidentStatusCommand advances an incident one step. Moving to
// RESOLVED requires a resolution text.
type ChangeIncidentStatusCommand struct {
	incidentID kernel.UUID
	status     cases.IncidentStatus
	resolution string

	guard guard.ConstructorGuard
}

func NewChangeIncidentStatusCommand(
	incidentID kernel.UUID,
	status cases.IncidentStatus,
	resolution string,
) (ChangeIncidentStatusCommand, error) {
	if err := errors.Join(incidentID.Validate(), status.Validate()); err != nil {
		return ChangeIncidentStatusCommand{}, err
	}

	return ChangeIncidentStatusCommand{
		incidentID: incidentID,
		status:     status,
		resolution: strings.TrimSpace(resolution),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeIncidentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeIncidentStatusCommandIsNotConstructed)
}

func (c ChangeIncidentStatusCommand) IncidentID() kernel.UUID      { return c.incidentID }
func (c ChangeIncidentStatusCommand) Status() cases.IncidentStatus { return c.status }
func (c ChangeIncidentStatusCommand) Resolution() string           { return c.resolution }
