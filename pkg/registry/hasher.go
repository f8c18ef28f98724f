package registry

import (
	"github.com/vanitychain/registry/core/types"
	"github.com/vanitychain/registry/crypto"
)

// KeccakHasher adapts crypto.Keccak256Hash to the Hasher interface.
type KeccakHasher struct{}

// Hash implements Hasher.
func (KeccakHasher) Hash(parts ...[]byte) types.Hash {
	return crypto.Keccak256Hash(parts...)
}
