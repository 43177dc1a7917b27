package parsedutch

import "errors"

// Errors returned by the parsedutch package
var (
	// ErrInvalidConfig is returned when a configuration document or override
	// cannot be used to construct a Parser.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrConfigNotMapping indicates that a configuration document is not a mapping.
	ErrConfigNotMapping = errors.New("configuration must be a mapping")
	// ErrPositionNotBoolean indicates a non-boolean value for `position`.
	ErrPositionNotBoolean = errors.New("position must be a boolean")
	// ErrEmptyAbbreviation indicates an abbreviation entry without any stem.
	ErrEmptyAbbreviation = errors.New("abbreviation entry is empty")
)
