package common

import "errors"

// ErrStorage hides the concrete persistence error from callers. Services
// translate unknown repository errors into it at the transaction boundary,
// the underlying cause goes to the log only.
var ErrStorage = errors.New("storage failure")
