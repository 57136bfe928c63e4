package tariff_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDestination(t *testing.T) {
	t.Run("valid destination", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := tariff.NewDestination(id, " Oran ", "Algeria", decimal.RequireFromString("50.00"))

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, id, d.ID())
		assert.Equal(t, "Oran", d.City())
		assert.True(t, d.BaseRate().Equal(decimal.NewFromInt(50)))
	})

	t.Run("all violations are reported", func(t *testing.T) {
		_, err := tariff.NewDestination(kernel.UUID{}, "", "", decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d tariff.Destination
		require.ErrorIs(t, d.Validate(), tariff.ErrDestinationIsNotConstructed)
	})
}

func TestDestination_ChangeBaseRate(t *testing.T) {
	d, err := tariff.NewDestination(kernel.NewUUID(), "Oran", "Algeria", decimal.NewFromInt(50))
	require.NoError(t, err)

	require.NoError(t, d.ChangeBaseRate(decimal.NewFromInt(80)))
	assert.True(t, d.BaseRate().Equal(decimal.NewFromInt(80)))

	require.Error(t, d.ChangeBaseRate(decimal.NewFromInt(-5)))
	assert.True(t, d.BaseRate().Equal(decimal.NewFromInt(80)))

	err = d.ChangeBaseRate(decimal.RequireFromString("80.125"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "base_rate", errs.ParamName(err))
	assert.True(t, d.BaseRate().Equal(decimal.NewFromInt(80)))
}

func TestNewServiceTier(t *testing.T) {
	t.Run("valid tier", func(t *testing.T) {
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Express",
			decimal.RequireFromString("0.50"), decimal.RequireFromString("10.00"))

		require.NoError(t, err)
		assert.Equal(t, "Express", tier.Name())
		assert.True(t, tier.WeightRate().Equal(decimal.RequireFromString("0.5")))
		assert.True(t, tier.VolumeRate().Equal(decimal.NewFromInt(10)))
	})

	t.Run("negative rates are rejected", func(t *testing.T) {
		_, err := tariff.NewServiceTier(kernel.NewUUID(), "Express", decimal.NewFromInt(-1), decimal.NewFromInt(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "weight_rate", errs.ParamName(err))
	})

	t.Run("rates keep at most four decimals", func(t *testing.T) {
		_, err := tariff.NewServiceTier(kernel.NewUUID(), "Express",
			decimal.RequireFromString("0.3333"), decimal.RequireFromString("0.33333"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "volume_rate", errs.ParamName(err))
	})

	t.Run("change rates is all or nothing", func(t *testing.T) {
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Eco", decimal.NewFromInt(1), decimal.NewFromInt(2))
		require.NoError(t, err)

		require.Error(t, tier.ChangeRates(decimal.NewFromInt(3), decimal.NewFromInt(-2)))
		assert.True(t, tier.WeightRate().Equal(decimal.NewFromInt(1)))
		assert.True(t, tier.VolumeRate().Equal(decimal.NewFromInt(2)))
	})
}
