package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("shipment", "A1B2C3D4E5")

	assert.Equal(t, "shipment", err.ParamName)
	assert.Equal(t, "A1B2C3D4E5", err.ID)
	require.NoError(t, err.Cause)
	assert.Equal(t, "object not found: A1B2C3D4E5", err.Error())
	assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())

	lookup := errors.New("connection reset")
	withCause := errs.NewObjectNotFoundErrorWithCause("invoice", "F1A2B3C4D", lookup)
	assert.Equal(t,
		"object not found: param is: invoice, ID is: F1A2B3C4D (cause: connection reset)",
		withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, withCause, lookup)
}

func TestValidationErrors(t *testing.T) {
	cause := errors.New("not a decimal")

	tests := []struct {
		name     string
		err      error
		sentinel error
		param    string
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("weight"),
			sentinel: errs.ErrValueIsInvalid,
			param:    "weight",
			message:  "value is invalid: weight",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("volume", cause),
			sentinel: errs.ErrValueIsInvalid,
			param:    "volume",
			message:  "value is invalid: volume (cause: not a decimal)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("location"),
			sentinel: errs.ErrValueIsRequired,
			param:    "location",
			message:  "value is required: location",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("client_id", cause),
			sentinel: errs.ErrValueIsRequired,
			param:    "client_id",
			message:  "value is required: client_id (cause: not a decimal)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("tax_rate", 120, 0, 100),
			sentinel: errs.ErrValueIsOutOfRange,
			param:    "tax_rate",
			message:  "value is invalid: 120 is tax_rate, min value is 0, max value is 100",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("months", 40, 1, 36, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			param:    "months",
			message:  "value is invalid: 40 is months, min value is 1, max value is 36 (cause: not a decimal)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, errs.IsValidation(tt.err))
			assert.Equal(t, tt.param, errs.ParamName(tt.err))
		})
	}
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("comment", "left at\ndepot", 0, 10)

	assert.Contains(t, err.Error(), "left at depot")
	assert.NotContains(t, err.Error(), "\n")
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrInvalidState)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("client", "7c9e6679")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("tracking_code")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("batch_size", 5000, 1, 1000)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("location")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		conflictErr := errs.NewConflictError("tracking_code", "AB12CD34EF")
		require.ErrorIs(t, conflictErr, errs.ErrConflict)

		stateErr := errs.NewInvalidStateError("invoice", "ISSUED", "attach shipment to")
		require.ErrorIs(t, stateErr, errs.ErrInvalidState)
	})

	t.Run("wrapped errors keep their classification", func(t *testing.T) {
		wrapped := fmt.Errorf("create shipment: %w", errs.NewValueIsRequiredError("destination"))
		require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
		assert.True(t, errs.IsValidation(wrapped))
		assert.Equal(t, "destination", errs.ParamName(wrapped))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("shipment", "AB12CD34EF")

		assert.Equal(t, "shipment", err.ParamName)
		assert.Equal(t, "AB12CD34EF", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: shipment AB12CD34EF already exists", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewConflictErrorWithCause("invoice_code", "F1A2B3C4D", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: invoice_code F1A2B3C4D already exists (cause: duplicate key)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("invoice", "ISSUED", "attach shipment to")

		assert.Equal(t, "invoice", err.Entity)
		assert.Equal(t, "ISSUED", err.State)
		assert.Equal(t, "attach shipment to", err.Operation)
		assert.Equal(t, "invalid state: cannot attach shipment to invoice in ISSUED state", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("DELIVERED is terminal")
		err := errs.NewInvalidStateErrorWithCause("shipment", "DELIVERED", "change status of", cause)

		assert.Equal(t,
			"invalid state: cannot change status of shipment in DELIVERED state (cause: DELIVERED is terminal)",
			err.Error())
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("weight")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("weight")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("tax_rate", 120, 0, 100)))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("shipment", "X")))
	assert.False(t, errs.IsValidation(errs.NewConflictError("shipment", "X")))
	assert.False(t, errs.IsValidation(nil))

	assert.Equal(t, "tax_rate", errs.ParamName(errs.NewValueIsOutOfRangeError("tax_rate", 120, 0, 100)))
	assert.Empty(t, errs.ParamName(errors.New("plain")))
}
