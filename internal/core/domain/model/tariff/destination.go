package tariff

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination constructor")

// Destination is a city served by the carrier and its base delivery charge.
type Destination struct {
	id       kernel.UUID
	city     string
	country  string
	baseRate decimal.Decimal

	guard guard.ConstructorGuard
}

func NewDestination(id kernel.UUID, city, country string, baseRate decimal.Decimal) (*Destination, error) {
	destination := &Destination{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		destination.setID(id),
		destination.setCity(city),
		destination.setCountry(country),
		destination.setBaseRate(baseRate),
	); err != nil {
		return nil, err
	}

	return destination, nil
}

// RestoreDestination rebuilds a destination from storage.
func RestoreDestination(id kernel.UUID, city, country string, baseRate decimal.Decimal) *Destination {
	return &Destination{
		id:       id,
		city:     city,
		country:  country,
		baseRate: baseRate,
		guard:    guard.NewConstructorGuard(),
	}
}

func (d *Destination) Validate() error {
	if d == nil {
		return ErrDestinationIsNotConstructed
	}
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

func (d *Destination) ID() kernel.UUID {
	return d.id
}

func (d *Destination) City() string {
	return d.city
}

func (d *Destination) Country() string {
	return d.country
}

func (d *Destination) BaseRate() decimal.Decimal {
	return d.baseRate
}

// ChangeBaseRate updates the rate applied to shipments priced from now on.
func (d *Destination) ChangeBaseRate(baseRate decimal.Decimal) error {
	return d.setBaseRate(baseRate)
}

func (d *Destination) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Destination) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	d.city = city
	return nil
}

func (d *Destination) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	d.country = country
	return nil
}

func (d *Destination) setBaseRate(baseRate decimal.Decimal) error {
	if err := kernel.ValidateMoney("base_rate", baseRate); err != nil {
		return err
	}
	d.baseRate = baseRate
	return nil
}
