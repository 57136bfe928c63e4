package cases

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

const (
	claimCodePrefix = "R"
	claimCodeLength = 8

	EventClaimStatusChanged = "claim.status_changed"
)

var ErrClaimIsNotConstructed = errors.New("Claim must be created via NewClaim constructor")

// NewClaimCode returns a random claim code candidate.
func NewClaimCode() kernel.Code {
	return kernel.GenerateCode(claimCodePrefix, claimCodeLength)
}

// ClaimStatusChangedEvent notifies the client-facing side of a claim update.
type ClaimStatusChangedEvent struct {
	kernel.BaseEvent
	Code     string `json:"code"`
	ClientID string `json:"client_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Response string `json:"response,omitempty"`
}

// Claim is a complaint filed by a client, optionally about a shipment and/or
// an invoice. Linked records may be in any state.
type Claim struct {
	kernel.EventRecorder

	id          kernel.UUID
	code        kernel.Code
	clientID    kernel.UUID
	kind        ClaimType
	description string
	status      ClaimStatus
	response    string
	resolvedAt  *time.Time
	shipmentID  *kernel.UUID
	invoiceID   *kernel.UUID
	filedAt     time.Time

	guard guard.ConstructorGuard
}

func NewClaim(
	id kernel.UUID,
	code kernel.Code,
	clientID kernel.UUID,
	kind ClaimType,
	description string,
	shipmentID *kernel.UUID,
	invoiceID *kernel.UUID,
	filedAt time.Time,
) (*Claim, error) {
	description = strings.TrimSpace(description)

	if err := errors.Join(
		id.Validate(),
		code.Validate(),
		clientID.Validate(),
		kind.Validate(),
		requireText("description", description),
		validateOptional(shipmentID),
		validateOptional(invoiceID),
	); err != nil {
		return nil, err
	}

	return &Claim{
		id:          id,
		code:        code,
		clientID:    clientID,
		kind:        kind,
		description: description,
		status:      ClaimNew,
		shipmentID:  shipmentID,
		invoiceID:   invoiceID,
		filedAt:     filedAt.UTC().Truncate(time.Microsecond),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreClaim(
	id kernel.UUID,
	code kernel.Code,
	clientID kernel.UUID,
	kind ClaimType,
	description string,
	status ClaimStatus,
	response string,
	resolvedAt *time.Time,
	shipmentID *kernel.UUID,
	invoiceID *kernel.UUID,
	filedAt time.Time,
) *Claim {
	return &Claim{
		id:          id,
		code:        code,
		clientID:    clientID,
		kind:        kind,
		description: description,
		status:      status,
		response:    response,
		resolvedAt:  resolvedAt,
		shipmentID:  shipmentID,
		invoiceID:   invoiceID,
		filedAt:     filedAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}
}

func (c *Claim) Validate() error {
	if c == nil {
		return ErrClaimIsNotConstructed
	}
	return c.guard.Validate(ErrClaimIsNotConstructed)
}

func (c *Claim) ID() kernel.UUID          { return c.id }
func (c *Claim) Code() kernel.Code        { return c.code }
func (c *Claim) ClientID() kernel.UUID    { return c.clientID }
func (c *Claim) Type() ClaimType          { return c.kind }
func (c *Claim) Description() string      { return c.description }
func (c *Claim) Status() ClaimStatus      { return c.status }
func (c *Claim) Response() string         { return c.response }
func (c *Claim) ResolvedAt() *time.Time   { return c.resolvedAt }
func (c *Claim) ShipmentID() *kernel.UUID { return c.shipmentID }
func (c *Claim) InvoiceID() *kernel.UUID  { return c.invoiceID }
func (c *Claim) FiledAt() time.Time       { return c.filedAt }

// ChangeStatus moves the claim and optionally replaces the response sent to
// the client. Reaching RESOLVED stamps the resolution time.
func (c *Claim) ChangeStatus(to ClaimStatus, response string, at time.Time) error {
	if err := c.status.ValidateTransition(to); err != nil {
		return err
	}

	if response = strings.TrimSpace(response); response != "" {
		c.response = response
	}
	if to == ClaimResolved {
		resolvedAt := at.UTC().Truncate(time.Microsecond)
		c.resolvedAt = &resolvedAt
	}

	from := c.status
	c.status = to
	c.Record(ClaimStatusChangedEvent{
		BaseEvent: kernel.NewBaseEvent(EventClaimStatusChanged, c.id, at),
		Code:      c.code.String(),
		ClientID:  c.clientID.String(),
		From:      from.String(),
		To:        to.String(),
		Response:  c.response,
	})
	return nil
}
