package registry

import (
	"bytes"
	"sort"

	"github.com/vanitychain/registry/core/types"
)

// lockKey identifies a single row of LockPeriods: one account's commitment
// to one commit hash.
type lockKey struct {
	Account types.Address
	Commit  types.Hash
}

// store holds the registry's two persistent maps. It is not safe for
// concurrent use on its own; Registry guards it with a mutex.
type store struct {
	lockPeriods map[lockKey]LockPeriod
	owners      map[string]Owner
}

func newStore() *store {
	return &store{
		lockPeriods: make(map[lockKey]LockPeriod),
		owners:      make(map[string]Owner),
	}
}

// nameKey returns the map key for a name. Go map keys can't be []byte, but
// a string built from the same bytes is a lossless, comparable stand-in.
func nameKey(name types.Name) string {
	return string(name)
}

func (s *store) getOwner(name types.Name) (Owner, bool) {
	o, ok := s.owners[nameKey(name)]
	return o, ok
}

func (s *store) setOwner(name types.Name, o Owner) {
	s.owners[nameKey(name)] = o
}

func (s *store) deleteOwner(name types.Name) {
	delete(s.owners, nameKey(name))
}

// takeLockPeriod removes and returns the LockPeriod for (account, commit),
// reporting whether it was present. This is the "atomic take" the reveal
// procedure requires.
func (s *store) takeLockPeriod(account types.Address, commit types.Hash) (LockPeriod, bool) {
	key := lockKey{Account: account, Commit: commit}
	p, ok := s.lockPeriods[key]
	if ok {
		delete(s.lockPeriods, key)
	}
	return p, ok
}

// hasLockPeriod reports whether (account, commit) has an active row,
// without consuming it.
func (s *store) hasLockPeriod(account types.Address, commit types.Hash) bool {
	_, ok := s.lockPeriods[lockKey{Account: account, Commit: commit}]
	return ok
}

func (s *store) setLockPeriod(account types.Address, commit types.Hash, p LockPeriod) {
	s.lockPeriods[lockKey{Account: account, Commit: commit}] = p
}

// activeCommits counts the LockPeriods rows currently held by account.
func (s *store) activeCommits(account types.Address) uint64 {
	var n uint64
	for k := range s.lockPeriods {
		if k.Account == account {
			n++
		}
	}
	return n
}

// lockPeriodEntry is one snapshotted row of LockPeriods.
type lockPeriodEntry struct {
	Key    lockKey
	Period LockPeriod
}

// snapshotLockPeriods returns every LockPeriods row in a deterministic
// order (account bytes, then commit bytes). Finalization must iterate a
// snapshot, not the live map, since it deletes rows as it goes: Go map
// iteration order is unspecified and deletion mid-range is only safe for
// the key being visited, not for correctness of *which* keys get visited.
func (s *store) snapshotLockPeriods() []lockPeriodEntry {
	entries := make([]lockPeriodEntry, 0, len(s.lockPeriods))
	for k, p := range s.lockPeriods {
		entries = append(entries, lockPeriodEntry{Key: k, Period: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		ai, aj := entries[i].Key.Account, entries[j].Key.Account
		if c := bytes.Compare(ai[:], aj[:]); c != 0 {
			return c < 0
		}
		ci, cj := entries[i].Key.Commit, entries[j].Key.Commit
		return bytes.Compare(ci[:], cj[:]) < 0
	})
	return entries
}

// ownerEntry is one snapshotted row of Owners.
type ownerEntry struct {
	NameKey string
	Owner   Owner
}

// snapshotOwners returns every Owners row in deterministic name-key order.
func (s *store) snapshotOwners() []ownerEntry {
	entries := make([]ownerEntry, 0, len(s.owners))
	for k, o := range s.owners {
		entries = append(entries, ownerEntry{NameKey: k, Owner: o})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].NameKey < entries[j].NameKey
	})
	return entries
}
