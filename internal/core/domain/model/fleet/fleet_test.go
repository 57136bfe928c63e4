package fleet_test

import (
	"testing"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	d, err := fleet.NewDriver(kernel.NewUUID(), "Karim", "B-778812")
	require.NoError(t, err)
	assert.True(t, d.Available())

	d.SetAvailable(false)
	assert.False(t, d.Available())

	_, err = fleet.NewDriver(kernel.NewUUID(), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewVehicle(t *testing.T) {
	v, err := fleet.NewVehicle(kernel.NewUUID(), " 01234-116-16 ", "van", decimal.NewFromInt(1200))
	require.NoError(t, err)
	assert.Equal(t, "01234-116-16", v.Registration())

	_, err = fleet.NewVehicle(kernel.NewUUID(), "AB-1", "van", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
