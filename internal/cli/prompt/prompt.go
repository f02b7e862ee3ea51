// Package prompt wraps promptui for the interactive setup wizard.
package prompt

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

func wrapError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrAborted
	}
	return err
}

// Input asks for free text, offering def.
func Input(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, AllowEdit: true}
	v, err := p.Run()
	return v, wrapError(err)
}

// Uint asks for an integer in [lo, hi].
func Uint(label string, def, lo, hi uint64) (uint64, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   strconv.FormatUint(def, 10),
		AllowEdit: true,
		Validate:  UintValidator(lo, hi),
	}
	v, err := p.Run()
	if err != nil {
		return 0, wrapError(err)
	}
	return strconv.ParseUint(v, 10, 64)
}

// UintValidator accepts decimal integers in [lo, hi].
func UintValidator(lo, hi uint64) promptui.ValidateFunc {
	return func(s string) error {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errors.New("not a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// HostPortValidator accepts "host:port" and ":port".
func HostPortValidator(s string) error {
	if _, _, err := net.SplitHostPort(s); err != nil {
		return errors.New("expected host:port")
	}
	return nil
}

// Address asks for a host:port value.
func Address(label, def string, optional bool) (string, error) {
	validate := HostPortValidator
	if optional {
		validate = func(s string) error {
			if s == "" {
				return nil
			}
			return HostPortValidator(s)
		}
	}
	p := promptui.Prompt{Label: label, Default: def, AllowEdit: true, Validate: validate}
	v, err := p.Run()
	return v, wrapError(err)
}

// Select asks the user to pick one of items and returns it.
func Select(label string, items []string) (string, error) {
	p := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "> {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "* {{ . | green }}",
		},
	}
	_, v, err := p.Run()
	return v, wrapError(err)
}

// Confirm asks a yes/no question. Answering anything but y is a no.
func Confirm(label string) (bool, error) {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, wrapError(err)
	}
}
