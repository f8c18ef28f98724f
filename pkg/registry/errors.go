package registry

import "errors"

// Errors returned by the registry's transactional operations. Each failed
// operation leaves state and emitted events untouched.
var (
	// ErrBadOrigin means the origin did not authenticate to a signed account.
	ErrBadOrigin = errors.New("registry: bad origin")

	// ErrCommitNotFound means reveal found no matching (caller, hash) row.
	ErrCommitNotFound = errors.New("registry: commit not found")

	// ErrNameNotFound means renew/unregister targeted an unowned name.
	ErrNameNotFound = errors.New("registry: name not found")

	// ErrNameNotOwned means renew/unregister was attempted by a non-owner.
	ErrNameNotOwned = errors.New("registry: name not owned by caller")

	// ErrInvalidName means the name failed length validation.
	ErrInvalidName = errors.New("registry: invalid name")

	errNilDependency = errors.New("registry: clock, hasher, currency, and events must be non-nil")
)
