package registry

import "fmt"

// LockID is the opaque identifier under which the registry's currency lock
// is held on an account. It is owned by the registry: the host must not let
// any other module mutate a (LockID, account) slot.
type LockID [8]byte

// StringLockID builds a LockID from a short ASCII tag: the tag fills the
// leading bytes, the remaining bytes stay zero, and bytes beyond the eighth
// are dropped. This mirrors the teacher's use of fixed-width identifiers for
// named resources rather than arbitrary strings.
func StringLockID(tag string) LockID {
	var id LockID
	copy(id[:], tag)
	return id
}

// Config holds the registry's immutable, construction-time parameters.
type Config struct {
	// LockID names this module's slot in the currency's lock table.
	LockID LockID

	// RegisterPeriod is the number of blocks a commit or ownership remains
	// valid before expiring.
	RegisterPeriod uint64

	// FundToLock is the collateral amount locked per active commit.
	FundToLock uint64

	// NameMaxLen bounds the encoded byte length of a name.
	NameMaxLen int
}

// DefaultConfig returns a Config with conservative non-zero defaults. Hosts
// are expected to override RegisterPeriod and FundToLock for their own
// economics; the zero Config is never valid (see Validate).
func DefaultConfig() Config {
	return Config{
		LockID:         StringLockID("vanity"),
		RegisterPeriod: 95,
		FundToLock:     57,
		NameMaxLen:     64,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.RegisterPeriod == 0 {
		return fmt.Errorf("registry: RegisterPeriod must be > 0")
	}
	if c.FundToLock == 0 {
		return fmt.Errorf("registry: FundToLock must be > 0")
	}
	if c.NameMaxLen <= 0 {
		return fmt.Errorf("registry: NameMaxLen must be > 0")
	}
	return nil
}
