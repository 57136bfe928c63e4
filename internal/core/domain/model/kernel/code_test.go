package kernel_test

import (
	"strings"
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	t.Run("prefix and length are honoured", func(t *testing.T) {
		code := kernel.GenerateCode("F", 8)

		assert.Len(t, code.String(), 9)
		assert.True(t, strings.HasPrefix(code.String(), "F"))
		require.NoError(t, code.Validate())
	})

	t.Run("output is uppercase alphanumeric", func(t *testing.T) {
		for range 50 {
			code := kernel.GenerateCode("", 10)
			parsed, err := kernel.NewCode(code.String())

			require.NoError(t, err)
			assert.True(t, parsed.IsEqual(code))
		}
	})

	t.Run("lengths beyond one uuid are filled", func(t *testing.T) {
		assert.Len(t, kernel.GenerateCode("R", 40).String(), 41)
	})

	t.Run("candidates differ", func(t *testing.T) {
		assert.NotEqual(t, kernel.GenerateCode("T", 8), kernel.GenerateCode("T", 8))
	})
}

func TestNewCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "normalizes case and spaces", input: " ab12cd34 ", want: "AB12CD34"},
		{name: "empty", input: "", wantErr: errs.ErrValueIsRequired},
		{name: "too short", input: "AB", wantErr: errs.ErrValueIsOutOfRange},
		{name: "punctuation", input: "F-1234", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := kernel.NewCode(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestCode_Validate(t *testing.T) {
	var zero kernel.Code

	require.ErrorIs(t, zero.Validate(), kernel.ErrCodeIsNotConstructed)
}
