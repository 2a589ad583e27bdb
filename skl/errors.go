package skl

import "errors"

// ErrInvalidMaxOffset guards New/NewSafe's only fallible precondition: a
// negative max offset has no meaning for the batched head-advance trigger.
var ErrInvalidMaxOffset = errors.New("[lfskl] max offset must be >= 0")
