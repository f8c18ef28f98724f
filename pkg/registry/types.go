package registry

import "github.com/vanitychain/registry/core/types"

// Clock is supplied by the host runtime to yield the current block number.
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() uint64

// Now implements Clock.
func (f ClockFunc) Now() uint64 { return f() }

// Hasher is the host's deterministic, collision-resistant hash over byte
// sequences. Commit derivation concatenates the caller's encoded address
// with the encoded name and hashes the result.
type Hasher interface {
	Hash(parts ...[]byte) types.Hash
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc func(parts ...[]byte) types.Hash

// Hash implements Hasher.
func (f HasherFunc) Hash(parts ...[]byte) types.Hash { return f(parts...) }

// Origin is the authenticated caller of a transactional operation. The host
// runtime is responsible for signature verification; the registry only
// consumes the already-authenticated result.
type Origin interface {
	// Authenticate returns the signer's account, or ErrBadOrigin if the
	// origin is not a signed account (e.g. an unsigned/root/inherent origin).
	Authenticate() (types.Address, error)
}

// Signed is an Origin that always authenticates to a fixed account. It is
// the common case: a transaction signed by a single external account.
type Signed types.Address

// Authenticate implements Origin.
func (s Signed) Authenticate() (types.Address, error) {
	return types.Address(s), nil
}

// Unsigned is an Origin that never authenticates, modeling an inherent or
// root-dispatched call that must be rejected by every registry operation.
type Unsigned struct{}

// Authenticate implements Origin.
func (Unsigned) Authenticate() (types.Address, error) {
	return types.Address{}, ErrBadOrigin
}

// LockPeriod is the validity window of a commitment or an ownership.
type LockPeriod struct {
	Begin uint64
	End   uint64
}

// expired reports whether the period has ended by block n (end <= n).
func (p LockPeriod) expired(n uint64) bool {
	return p.End <= n
}

// Owner records who holds a name, the commit that won it, and the window
// during which that ownership remains valid.
type Owner struct {
	ID         types.Address
	Commit     types.Hash
	LockPeriod LockPeriod
}
