package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrFileClaimCommandIsNotConstructed = errors.New(
	"FileClaimCommand must be created via NewFileClaimCommand constructor",
)

// FileClaimCommand opens a customer claim, optionally about one of the
// client's shipments and/or invoices.
type FileClaimCommand struct {
	claimID      kernel.UUID
	clientID     kernel.UUID
	kind         cases.ClaimType
	description  string
	trackingCode *kernel.Code
	invoiceCode  *kernel.Code

	guard guard.ConstructorGuard
}

func NewFileClaimCommand(
	claimID kernel.UUID,
	clientID kernel.UUID,
	kind cases.ClaimType,
	description string,
	trackingCode *kernel.Code,
	invoiceCode *kernel.Code,
) (FileClaimCommand, error) {
	if err := errors.Join(
		claimID.Validate(),
		clientID.Validate(),
		kind.Validate(),
		requireText("description", description),
		validateOptionalCode(trackingCode),
		validateOptionalCode(invoiceCode),
	); err != nil {
		return FileClaimCommand{}, err
	}

	return FileClaimCommand{
		claimID:      claimID,
		clientID:     clientID,
		kind:         kind,
		description:  strings.TrimSpace(description),
		trackingCode: trackingCode,
		invoiceCode:  invoiceCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c FileClaimCommand) Validate() error {
	return c.guard.Validate(ErrFileClaimCommandIsNotConstructed)
}

func (c FileClaimCommand) ClaimID() kernel.UUID       { return c.claimID }
func (c FileClaimCommand) ClientID() kernel.UUID      { return c.clientID }
func (c FileClaimCommand) Type() cases.ClaimType      { return c.kind }
func (c FileClaimCommand) Description() string        { return c.description }
func (c FileClaimCommand) TrackingCode() *kernel.Code { return c.trackingCode }
func (c FileClaimCommand) InvoiceCode() *kernel.Code  { return c.invoiceCode }
