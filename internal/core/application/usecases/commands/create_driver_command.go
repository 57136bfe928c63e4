package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

type CreateDriverCommand struct {
	driverID      kernel.UUID
	name          string
	licenseNumber string

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(driverID kernel.UUID, name, licenseNumber string) (CreateDriverCommand, error) {
	if err := errors.Join(
		driverID.Validate(),
		requireText("name", name),
		requireText("license_number", licenseNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		driverID:      driverID,
		name:          strings.TrimSpace(name),
		licenseNumber: strings.TrimSpace(licenseNumber),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }
func (c CreateDriverCommand) Name() string          { return c.name }
func (c CreateDriverCommand) LicenseNumber() string { return c.licenseNumber }
