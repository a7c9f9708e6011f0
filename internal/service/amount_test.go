package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0.01", nil},
		{"12.50", nil},
		{"3.100", nil},
		{"999999999999.99", nil},
		{"0", ErrInvalidAmount},
		{"-1", ErrInvalidAmount},
		{"0.001", ErrAmountPrecision},
		{"0.005", ErrAmountPrecision},
		{"1000000000000", ErrAmountTooLarge},
		{"1e20", ErrAmountTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
