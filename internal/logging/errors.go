package logging

import "errors"

// ErrUnknownValue is returned for an unrecognized level or format name.
var ErrUnknownValue = errors.New("unknown logging value")
