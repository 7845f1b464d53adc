// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/utils"
)

var (
	ErrInputEmpty          = errors.New("input is empty")
	ErrInputTooLarge       = errors.New("input is too large")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrIndexOutOfRange     = errors.New("index out-of-range")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParseAddress(strings.TrimSpace(input))
			return err
		},
	}
	recipient, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddress(strings.TrimSpace(recipient))
}

func String(label string, minLen int, maxLen int) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) < minLen {
				return ErrInputEmpty
			}
			if len(input) > maxLen {
				return ErrInputTooLarge
			}
			return nil
		},
	}
	text, err := promptText.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Asset accepts "native" (or XLM) or CODE:ISSUER.
func Asset(label string, allowNative bool) (chain.Asset, error) {
	text := label + " (use native for the native asset)"
	if !allowNative {
		text = label + " (CODE:ISSUER)"
	}
	validate := func(input string) error {
		if len(strings.TrimSpace(input)) == 0 {
			return ErrInputEmpty
		}
		asset, err := chain.ParseAsset(input)
		if err != nil {
			return err
		}
		if !allowNative && asset.IsNative() {
			return ErrInvalidChoice
		}
		return nil
	}
	promptText := promptui.Prompt{
		Label:    text,
		Validate: validate,
	}
	raw, err := promptText.Run()
	if err != nil {
		return chain.Asset{}, err
	}
	if err := validate(raw); err != nil {
		return chain.Asset{}, err
	}
	return chain.ParseAsset(raw)
}

// Amount asks for a decimal amount no larger than [balance]. The raw
// string is returned so it reaches the operation builder unchanged.
func Amount(label string, balance chain.Amount) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			amount, err := chain.ParseAmount(input)
			if err != nil {
				return err
			}
			if amount > balance {
				return ErrInsufficientBalance
			}
			return nil
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func Choice(label string, max int) (int, error) {
	if max == 1 {
		return 0, nil
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			index, err := strconv.Atoi(input)
			if err != nil {
				return err
			}
			if index >= max || index < 0 {
				return ErrIndexOutOfRange
			}
			return nil
		},
	}
	rawIndex, err := promptText.Run()
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(strings.TrimSpace(rawIndex))
}

func Continue() (bool, error) {
	ok, err := Bool("continue")
	if err != nil {
		return false, err
	}
	if !ok {
		utils.Outf("{{red}}exiting...{{/}}\n")
	}
	return ok, nil
}

func Bool(label string) (bool, error) {
	promptText := promptui.Prompt{
		Label: fmt.Sprintf("%s (y/n)", label),
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			lower := strings.ToLower(input)
			if lower == "y" || lower == "n" {
				return nil
			}
			return ErrInvalidChoice
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(raw)) == "y", nil
}
