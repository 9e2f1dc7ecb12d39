package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-reservation-service/internal/pkg/errors"
)

type sample struct {
	Phone string `json:"telefono" validate:"mobilephone"`
	Date  string `json:"fecha" validate:"iso8601"`
	Min   int    `json:"min" validate:"min=1"`
	Max   int    `json:"max" validate:"gtefield=Min"`
	Kind  string `json:"tipo" validate:"omitempty,oneof=ciudad departamento"`
}

func TestValidate_CustomRules(t *testing.T) {
	tests := []struct {
		name   string
		input  sample
		fields []string
	}{
		{
			name:  "valid",
			input: sample{Phone: "+57 300 123-4567", Date: "2026-12-05", Min: 10, Max: 10},
		},
		{
			name:   "short phone",
			input:  sample{Phone: "12345", Date: "2026-12-05", Min: 1, Max: 1},
			fields: []string{"telefono"},
		},
		{
			name:   "phone with letters",
			input:  sample{Phone: "300-CALL-NOW", Date: "2026-12-05T18:00:00Z", Min: 1, Max: 1},
			fields: []string{"telefono"},
		},
		{
			name:   "not a date",
			input:  sample{Phone: "3001234567", Date: "05/12/2026", Min: 1, Max: 1},
			fields: []string{"fecha"},
		},
		{
			name:   "max below min",
			input:  sample{Phone: "3001234567", Date: "2026-12-05", Min: 100, Max: 50},
			fields: []string{"max"},
		},
		{
			name:   "unknown kind",
			input:  sample{Phone: "3001234567", Date: "2026-12-05", Min: 1, Max: 1, Kind: "pais"},
			fields: []string{"tipo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errors.ErrValidationFailed)
			appErr, ok := errors.As(err)
			require.True(t, ok)

			got := appErr.Details["fields"].([]FieldError)
			names := make([]string, 0, len(got))
			for _, f := range got {
				names = append(names, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.Equal(t, tt.fields, names)
		})
	}
}

func TestValidate_DoesNotMutateSentinel(t *testing.T) {
	_ = Validate(&sample{Phone: "1"})
	assert.Nil(t, errors.ErrValidationFailed.Details)
}

func TestParseISO8601(t *testing.T) {
	d, err := ParseISO8601("2026-12-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseISO8601("2026-12-05T18:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, 23, d.UTC().Hour())

	_, err = ParseISO8601("mañana")
	assert.Error(t, err)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("7b1b7f1e-4c47-4a53-9a4f-6f0f5c0f2a11", "uuid"))
	assert.Error(t, ValidateVar("64b7f0c2e4b0a1a2b3c4d5e6", "uuid"))
	assert.Error(t, ValidateVar("", "required,uuid"))
}
