package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion taxonomy. Callers match with errors.Is
// against these, or errors.As against the typed wrappers below for detail.
var (
	// ErrUnknownUnit is returned when a unit symbol has no registration.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnknownDimension is returned when a dimension has no registration.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrIncompatibleDimensions is returned when the source and target units
	// belong to different dimensions.
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")

	// ErrInvalidValue is returned when the input value is NaN or infinite.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateUnit is returned when a symbol or alias is already taken.
	ErrDuplicateUnit = errors.New("duplicate unit")
)

// UnknownUnitError reports the symbol that failed to resolve.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// UnknownDimensionError reports the dimension that failed to resolve.
type UnknownDimensionError struct {
	Dimension Dimension
}

func (e *UnknownDimensionError) Error() string {
	return fmt.Sprintf("unknown dimension %q", string(e.Dimension))
}

func (e *UnknownDimensionError) Unwrap() error { return ErrUnknownDimension }

// IncompatibleDimensionsError reports a conversion requested across two
// dimensions.
type IncompatibleDimensionsError struct {
	From          string
	To            string
	FromDimension Dimension
	ToDimension   Dimension
}

func (e *IncompatibleDimensionsError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
		e.From, e.FromDimension, e.To, e.ToDimension)
}

func (e *IncompatibleDimensionsError) Unwrap() error { return ErrIncompatibleDimensions }

// InvalidValueError reports a non-finite input value.
type InvalidValueError struct {
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v: conversion requires a finite number", e.Value)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// DuplicateUnitError reports a registration that collides with an existing
// symbol or alias.
type DuplicateUnitError struct {
	Symbol string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit %q already registered", e.Symbol)
}

func (e *DuplicateUnitError) Unwrap() error { return ErrDuplicateUnit }

// IsUnknownUnit returns true if err is an unknown-unit failure.
func IsUnknownUnit(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}

// IsIncompatible returns true if err is a cross-dimension failure.
func IsIncompatible(err error) bool {
	return errors.Is(err, ErrIncompatibleDimensions)
}
