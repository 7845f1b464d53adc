// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package listing holds the car listing record collected by the rental
// front end before an owner is paid through the ledger.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentacar/ledgersdk/codec"
)

const (
	MinPassengers = 1
	MaxPassengers = 10
)

var ErrInvalidListing = errors.New("invalid listing")

type Car struct {
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Color        string          `json:"color"`
	Passengers   int             `json:"passengers"`
	PricePerDay  decimal.Decimal `json:"pricePerDay"`
	AC           bool            `json:"ac"`
	OwnerAddress string          `json:"ownerAddress"`
}

// FieldError is a problem with a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError collects every invalid field of a [Car].
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidListing, strings.Join(msgs, "; "))
}

func (*ValidationError) Unwrap() error {
	return ErrInvalidListing
}

// Has reports whether [field] failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Owner returns the parsed owner identity. Call [Car.Validate] first.
func (c *Car) Owner() (codec.Address, error) {
	return codec.ParseAddress(c.OwnerAddress)
}

// Validate checks every field and reports all failures at once.
func (c *Car) Validate() error {
	var fields []FieldError
	add := func(field, msg string) {
		fields = append(fields, FieldError{Field: field, Message: msg})
	}
	for _, f := range []struct{ name, value string }{
		{"brand", c.Brand},
		{"model", c.Model},
		{"color", c.Color},
	} {
		if len(strings.TrimSpace(f.value)) == 0 {
			add(f.name, "is required")
		}
	}
	if c.Passengers < MinPassengers || c.Passengers > MaxPassengers {
		add("passengers", fmt.Sprintf("must be between %d and %d", MinPassengers, MaxPassengers))
	}
	if c.PricePerDay.IsNegative() {
		add("pricePerDay", "must not be negative")
	}
	if _, err := c.Owner(); err != nil {
		add("ownerAddress", err.Error())
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
