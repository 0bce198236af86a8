package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Codespace groups the registered orbit errors.
const Codespace = "orbits"

var (
	// ErrInvalidParameter is the registered root of every InvalidParameterError
	ErrInvalidParameter = errorsmod.Register(Codespace, 2, "invalid parameter")
	// ErrUnknownPlanet is the registered root of every UnknownPlanetError
	ErrUnknownPlanet = errorsmod.Register(Codespace, 3, "unknown planet")
)

// InvalidParameterError reports an orbital or sampling parameter outside its domain.
type InvalidParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

// NewInvalidParameter builds an InvalidParameterError
func NewInvalidParameter(name string, value interface{}, reason string) *InvalidParameterError {
	return &InvalidParameterError{Name: name, Value: value, Reason: reason}
}

func (e *InvalidParameterError) Error() string {
	return errorsmod.Wrapf(ErrInvalidParameter, "%s=%v %s", e.Name, e.Value, e.Reason).Error()
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// UnknownPlanetError reports a planet name missing from the catalog.
type UnknownPlanetError struct {
	Name  string
	Known []string
}

func (e *UnknownPlanetError) Error() string {
	msg := fmt.Sprintf("planet %q not found", e.Name)
	if len(e.Known) > 0 {
		msg += fmt.Sprintf(", choose from: %s", strings.Join(e.Known, ", "))
	}
	return errorsmod.Wrap(ErrUnknownPlanet, msg).Error()
}

func (e *UnknownPlanetError) Unwrap() error { return ErrUnknownPlanet }
