package services

import (
	"testing"

	"ims_server/lib"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMonetary(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"zero", "0", true},
		{"typical price", "499.99", true},
		{"upper bound", "999.99", true},
		{"two fraction digits", "10.50", true},
		{"negative", "-0.01", false},
		{"at limit", "1000", false},
		{"above limit", "1000.01", false},
		{"three fraction digits", "10.555", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			value, err := decimal.NewFromString(c.value)
			require.NoError(t, err)

			err = validateMonetary("price", value)
			if c.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, lib.ErrValidation)
			}
		})
	}
}
