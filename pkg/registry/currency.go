package registry

import (
	"github.com/holiman/uint256"

	"github.com/vanitychain/registry/core/types"
)

// Currency is the host's lockable-balance subsystem. SetLock is idempotent:
// calling it again under the same LockID replaces the previous amount
// rather than adding to it. The registry owns the (LockID, account) slot
// for every account it ever locks; the host must not let another module
// write to the same slot.
type Currency interface {
	SetLock(id LockID, account types.Address, amount *uint256.Int)
	RemoveLock(id LockID, account types.Address)
}

// saturatingMul multiplies a count by a per-unit amount, clamping to the
// maximum uint256 value on overflow instead of wrapping. A single account
// realistically cannot hold enough active commits to reach this ceiling,
// but the contract demands the check regardless.
func saturatingMul(count uint64, unit uint64) *uint256.Int {
	c := uint256.NewInt(count)
	u := uint256.NewInt(unit)
	product, overflow := new(uint256.Int).MulOverflow(c, u)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return product
}
