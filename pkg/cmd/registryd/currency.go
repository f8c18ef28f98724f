package main

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/vanitychain/registry/core/types"
	"github.com/vanitychain/registry/registry"
)

// memCurrency is a minimal in-memory stand-in for a host balance module,
// recording only the locks the registry itself places. It has no notion of
// a spendable balance; it exists so registryd can drive a Registry without
// a real runtime behind it.
type memCurrency struct {
	mu    sync.Mutex
	locks map[types.Address]*uint256.Int
}

func newMemCurrency() *memCurrency {
	return &memCurrency{locks: make(map[types.Address]*uint256.Int)}
}

func (c *memCurrency) SetLock(_ registry.LockID, account types.Address, amount *uint256.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locks[account] = amount
}

func (c *memCurrency) RemoveLock(_ registry.LockID, account types.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.locks, account)
}

func (c *memCurrency) lockOf(account types.Address) *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if amt, ok := c.locks[account]; ok {
		return amt
	}
	return uint256.NewInt(0)
}
