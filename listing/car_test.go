// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package listing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/ledgersdk/auth"
)

func validCar(t *testing.T) Car {
	k, err := auth.GenerateKeypair()
	require.NoError(t, err)
	return Car{
		Brand:        "Fiat",
		Model:        "Panda",
		Color:        "red",
		Passengers:   4,
		PricePerDay:  decimal.RequireFromString("35.50"),
		AC:           true,
		OwnerAddress: k.PublicKey(),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Car)
		fields []string
	}{
		{
			name:   "valid",
			modify: func(*Car) {},
		},
		{
			name:   "free car",
			modify: func(c *Car) { c.PricePerDay = decimal.Zero },
		},
		{
			name:   "missing brand",
			modify: func(c *Car) { c.Brand = "  " },
			fields: []string{"brand"},
		},
		{
			name:   "no passengers",
			modify: func(c *Car) { c.Passengers = 0 },
			fields: []string{"passengers"},
		},
		{
			name:   "too many passengers",
			modify: func(c *Car) { c.Passengers = 11 },
			fields: []string{"passengers"},
		},
		{
			name:   "negative price",
			modify: func(c *Car) { c.PricePerDay = decimal.NewFromInt(-1) },
			fields: []string{"pricePerDay"},
		},
		{
			name:   "secret as owner",
			modify: func(c *Car) { c.OwnerAddress = "seed1qqqq" },
			fields: []string{"ownerAddress"},
		},
		{
			name: "everything wrong",
			modify: func(c *Car) {
				*c = Car{Passengers: 12, PricePerDay: decimal.NewFromInt(-5)}
			},
			fields: []string{"brand", "model", "color", "passengers", "pricePerDay", "ownerAddress"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			c := validCar(t)
			tt.modify(&c)
			err := c.Validate()
			if len(tt.fields) == 0 {
				require.NoError(err)
				return
			}
			require.ErrorIs(err, ErrInvalidListing)
			var verr *ValidationError
			require.ErrorAs(err, &verr)
			require.Len(verr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				require.True(verr.Has(f), f)
			}
		})
	}
}

func TestOwner(t *testing.T) {
	require := require.New(t)
	c := validCar(t)
	addr, err := c.Owner()
	require.NoError(err)
	require.Equal(c.OwnerAddress, addr.String())
}

func TestJSON(t *testing.T) {
	require := require.New(t)
	var c Car
	require.NoError(json.Unmarshal([]byte(`{"brand":"Fiat","model":"500","color":"white","passengers":4,"pricePerDay":"20","ac":false,"ownerAddress":""}`), &c))
	require.True(decimal.NewFromInt(20).Equal(c.PricePerDay))
	var verr *ValidationError
	require.ErrorAs(c.Validate(), &verr)
	require.Equal([]FieldError{{Field: "ownerAddress", Message: verr.Fields[0].Message}}, verr.Fields)
}
