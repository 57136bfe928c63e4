package services_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTariff(t *testing.T, base, weightRate, volumeRate string) (*tariff.Destination, *tariff.ServiceTier) {
	t.Helper()
	destination, err := tariff.NewDestination(kernel.NewUUID(), "Oran", "Algeria", dec(base))
	require.NoError(t, err)
	tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Standard", dec(weightRate), dec(volumeRate))
	require.NoError(t, err)
	return destination, tier
}

func TestPricingEngine_Price(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("reference scenario", func(t *testing.T) {
		destination, tier := newTariff(t, "50.00", "0.50", "10.00")

		amount, err := engine.Price(destination, tier, dec("10"), dec("2"))

		require.NoError(t, err)
		assert.Equal(t, "75.00", amount.StringFixed(2))
	})

	t.Run("exact decimal arithmetic", func(t *testing.T) {
		destination, tier := newTariff(t, "0.10", "0.20", "0.30")

		for range 100 {
			amount, err := engine.Price(destination, tier, dec("0.1"), dec("0.7"))
			require.NoError(t, err)
			assert.True(t, amount.Equal(dec("0.33")), amount.String())
		}
	})

	t.Run("formula holds for a spread of inputs", func(t *testing.T) {
		destination, tier := newTariff(t, "12.34", "1.111", "2.222")
		for _, tc := range []struct{ weight, volume string }{{"0", "0"}, {"3.5", "0"}, {"0", "7.25"}, {"1000", "33.333"}} {
			w, v := dec(tc.weight), dec(tc.volume)
			want := dec("12.34").Add(w.Mul(dec("1.111"))).Add(v.Mul(dec("2.222"))).Round(2)

			got, err := engine.Price(destination, tier, w, v)

			require.NoError(t, err)
			assert.True(t, want.Equal(got), "weight=%s volume=%s", tc.weight, tc.volume)
		}
	})

	t.Run("result is rounded to cents", func(t *testing.T) {
		destination, tier := newTariff(t, "10.00", "0.3333", "0")

		amount, err := engine.Price(destination, tier, dec("1.5"), dec("0"))

		require.NoError(t, err)
		assert.Equal(t, "10.5", amount.String())
		assert.Equal(t, int32(-2), amount.Exponent())
	})

	t.Run("sub-gram measures are rejected", func(t *testing.T) {
		destination, tier := newTariff(t, "50", "1", "1")

		_, err := engine.Price(destination, tier, dec("1.0005"), dec("1"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "weight", errs.ParamName(err))
	})

	t.Run("negative measures are rejected", func(t *testing.T) {
		destination, tier := newTariff(t, "50", "1", "1")

		_, err := engine.Price(destination, tier, dec("-1"), dec("1"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "weight", errs.ParamName(err))

		_, err = engine.Price(destination, tier, dec("1"), dec("-0.01"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing tariff references are rejected", func(t *testing.T) {
		destination, tier := newTariff(t, "50", "1", "1")

		_, err := engine.Price(nil, tier, dec("1"), dec("1"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = engine.Price(destination, &tariff.ServiceTier{}, dec("1"), dec("1"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
