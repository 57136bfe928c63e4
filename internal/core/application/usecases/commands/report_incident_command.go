package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrReportIncidentCommandIsNotConstructed = errors.New(
	"ReportIncidentCommand must be created via NewReportIncidentCommand constructor",
)

// ReportIncidentCommand records an operational incident, optionally linked to
// a shipment and/or a round by their codes.
type ReportIncidentCommand struct {
	incidentID   kernel.UUID
	kind         cases.IncidentType
	description  string
	trackingCode *kernel.Code
	roundCode    *kernel.Code

	guard guard.ConstructorGuard
}

func NewReportIncidentCommand(
	incidentID kernel.UUID,
	kind cases.IncidentType,
	description string,
	trackingCode *kernel.Code,
	roundCode *kernel.Code,
) (ReportIncidentCommand, error) {
	if err := errors.Join(
		incidentID.Validate(),
		kind.Validate(),
		requireText("description", description),
		validateOptionalCode(trackingCode),
		validateOptionalCode(roundCode),
	); err != nil {
		return ReportIncidentCommand{}, err
	}

	return ReportIncidentCommand{
		incidentID:   incidentID,
		kind:         kind,
		description:  strings.TrimSpace(description),
		trackingCode: trackingCode,
		roundCode:    roundCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ReportIncidentCommand) Validate() error {
	return c.guard.Validate(ErrReportIncidentCommandIsNotConstructed)
}

func (c ReportIncidentCommand) IncidentID() kernel.UUID    { return c.incidentID }
func (c ReportIncidentCommand) Type() cases.IncidentType   { return c.kind }
func (c ReportIncidentCommand) Description() string        { return c.description }
func (c ReportIncidentCommand) TrackingCode() *kernel.Code { return c.trackingCode }
func (c ReportIncidentCommand) RoundCode() *kernel.Code    { return c.roundCode }

func validateOptionalCode(code *kernel.Code) error {
	if code == nil {
		return nil
	}
	return code.Validate()
}
