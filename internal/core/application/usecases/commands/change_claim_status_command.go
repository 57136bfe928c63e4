package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrChangeClaimStatusCommandIsNotConstructed = errors.New(
	"ChangeClaimStatusCommand must be created via NewChangeClaimStatusCommand constructor",
)

type ChangeClaimStatusCommand struct {
	claimCode kernel.Code
	status    cases.ClaimStatus
	response  string

	guard guard.ConstructorGuard
}

func NewChangeClaimStatusCommand(
	claimCode kernel.Code,
	status cases.ClaimStatus,
	response string,
) (ChangeClaimStatusCommand, error) {
	if err := errors.Join(claimCode.Validate(), status.Validate()); err != nil {
		return ChangeClaimStatusCommand{}, err
	}

	return ChangeClaimStatusCommand{
		claimCode: claimCode,
		status:    status,
		response:  strings.TrimSpace(response),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeClaimStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeClaimStatusCommandIsNotConstructed)
}

func (c ChangeClaimStatusCommand) ClaimCode() kernel.Code    { return c.claimCode }
func (c ChangeClaimStatusCommand) Status() cases.ClaimStatus { return c.status }
func (c ChangeClaimStatusCommand) Response() string          { return c.response }
