package health

import "errors"

// ErrCheckTimeout is reported for a check that outlived the probe timeout.
var ErrCheckTimeout = errors.New("health: check timeout")
