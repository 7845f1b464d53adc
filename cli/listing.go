// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"encoding/json"
	"os"

	"github.com/rentacar/ledgersdk/listing"
	"github.com/rentacar/ledgersdk/utils"
)

// LoadListing reads and validates the car listing stored as JSON at
// [path].
func LoadListing(path string) (*listing.Car, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var car listing.Car
	if err := json.Unmarshal(b, &car); err != nil {
		return nil, err
	}
	if err := car.Validate(); err != nil {
		return nil, err
	}
	return &car, nil
}

// CheckListing prints whether the listing at [path] is valid.
func (*Handler) CheckListing(path string) error {
	car, err := LoadListing(path)
	if err != nil {
		utils.Outf("{{red}}invalid listing:{{/}} %v\n", err)
		return err
	}
	utils.Outf(
		"{{green}}valid listing:{{/}} %s %s (%s) {{cyan}}seats:{{/}} %d {{cyan}}per day:{{/}} %s {{cyan}}owner:{{/}} %s\n",
		car.Brand, car.Model, car.Color, car.Passengers, car.PricePerDay, car.OwnerAddress,
	)
	return nil
}
