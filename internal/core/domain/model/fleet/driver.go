package fleet

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

type Driver struct {
	id            kernel.UUID
	name          string
	licenseNumber string
	available     bool

	guard guard.ConstructorGuard
}

func NewDriver(id kernel.UUID, name, licenseNumber string) (*Driver, error) {
	d := &Driver{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	d.id = id

	d.name = strings.TrimSpace(name)
	d.licenseNumber = strings.TrimSpace(licenseNumber)
	if err := errors.Join(
		requireText("name", d.name),
		requireText("license_number", d.licenseNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func RestoreDriver(id kernel.UUID, name, licenseNumber string, available bool) *Driver {
	return &Driver{
		id:            id,
		name:          name,
		licenseNumber: licenseNumber,
		available:     available,
		guard:         guard.NewConstructorGuard(),
	}
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID       { return d.id }
func (d *Driver) Name() string          { return d.name }
func (d *Driver) LicenseNumber() string { return d.licenseNumber }
func (d *Driver) Available() bool       { return d.available }

func (d *Driver) SetAvailable(available bool) {
	d.available = available
}

func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
