package flow

import "errors"

var (
	// ErrNegativeLength is returned by Config.Validate when a padding or
	// spacing value is below zero.
	ErrNegativeLength = errors.New("negative layout length")

	// ErrUnknownIntent is returned when a sizing intent name is not recognized.
	ErrUnknownIntent = errors.New("unknown sizing intent")

	// ErrUnknownDevice is returned when a device class name is not recognized.
	ErrUnknownDevice = errors.New("unknown device class")

	// ErrUnknownAlignment is returned when an alignment name is not recognized.
	ErrUnknownAlignment = errors.New("unknown alignment")
)
