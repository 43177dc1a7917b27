package fixture

import "errors"

// Sentinel errors
var (
	ErrMismatch        = errors.New("fixture mismatch")
	ErrUnsupportedRoot = errors.New("unsupported fixture root")
)
