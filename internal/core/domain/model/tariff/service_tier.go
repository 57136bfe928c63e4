package tariff

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrServiceTierIsNotConstructed = errors.New("ServiceTier must be created via NewServiceTier constructor")

// ServiceTier is a level of service (standard, express...) charged per unit of
// weight and per unit of volume.
type ServiceTier struct {
	id         kernel.UUID
	name       string
	weightRate decimal.Decimal
	volumeRate decimal.Decimal

	guard guard.ConstructorGuard
}

func NewServiceTier(id kernel.UUID, name string, weightRate, volumeRate decimal.Decimal) (*ServiceTier, error) {
	tier := &ServiceTier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setID(id),
		tier.setName(name),
		tier.setRates(weightRate, volumeRate),
	); err != nil {
		return nil, err
	}

	return tier, nil
}

func RestoreServiceTier(id kernel.UUID, name string, weightRate, volumeRate decimal.Decimal) *ServiceTier {
	return &ServiceTier{
		id:         id,
		name:       name,
		weightRate: weightRate,
		volumeRate: volumeRate,
		guard:      guard.NewConstructorGuard(),
	}
}

func (s *ServiceTier) Validate() error {
	if s == nil {
		return ErrServiceTierIsNotConstructed
	}
	return s.guard.Validate(ErrServiceTierIsNotConstructed)
}

func (s *ServiceTier) ID() kernel.UUID {
	return s.id
}

func (s *ServiceTier) Name() string {
	return s.name
}

func (s *ServiceTier) WeightRate() decimal.Decimal {
	return s.weightRate
}

func (s *ServiceTier) VolumeRate() decimal.Decimal {
	return s.volumeRate
}

// ChangeRates replaces both rates; either both are applied or none.
func (s *ServiceTier) ChangeRates(weightRate, volumeRate decimal.Decimal) error {
	return s.setRates(weightRate, volumeRate)
}

func (s *ServiceTier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *ServiceTier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *ServiceTier) setRates(weightRate, volumeRate decimal.Decimal) error {
	if err := errors.Join(
		kernel.ValidateNonNegative("weight_rate", weightRate),
		kernel.ValidateNonNegative("volume_rate", volumeRate),
		kernel.ValidateScale("weight_rate", weightRate, kernel.RateScale),
		kernel.ValidateScale("volume_rate", volumeRate, kernel.RateScale),
	); err != nil {
		return err
	}
	s.weightRate = weightRate
	s.volumeRate = volumeRate
	return nil
}
