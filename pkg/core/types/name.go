package types

import "fmt"

// MaxNameLength is the upper bound, in bytes, on an encoded Name. It mirrors
// the runtime's NAME_MAX_LEN configuration constant; callers that need a
// different bound configure their own registry.Config instead of changing
// this default.
const MaxNameLength = 64

// Name is the human-readable identifier claimed through the registry. It is
// kept as a distinct type (rather than a bare []byte) so call sites can't
// accidentally pass an address or commit hash where a name is expected.
type Name []byte

// NameFromString is a convenience constructor for literal names.
func NameFromString(s string) Name {
	return Name(s)
}

// String returns the name as a string for logging and error messages.
func (n Name) String() string {
	return string(n)
}

// Encode returns the canonical byte encoding of the name, as used when
// deriving a commit hash. For Name the encoding is simply its bytes.
func (n Name) Encode() []byte {
	return []byte(n)
}

// Validate reports whether the name's encoded length fits within maxLen.
// An empty name is never valid: there is nothing to claim.
func (n Name) Validate(maxLen int) error {
	if len(n) == 0 {
		return fmt.Errorf("name: empty name")
	}
	if len(n) > maxLen {
		return fmt.Errorf("name: encoded length %d exceeds max %d", len(n), maxLen)
	}
	return nil
}
