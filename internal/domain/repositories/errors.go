package repositories

import "errors"

// ErrDuplicateKey is returned by write operations when the store rejects a
// row over a unique index. It is the backstop for the check-then-insert race
// the service-level uniqueness pre-checks cannot close on their own.
var ErrDuplicateKey = errors.New("duplicate key")
