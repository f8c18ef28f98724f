package registry

import (
	"testing"

	"github.com/vanitychain/registry/core/types"
)

func TestSnapshotLockPeriodsDeterministicOrder(t *testing.T) {
	s := newStore()
	accounts := []types.Address{account(3), account(1), account(2)}
	for i, a := range accounts {
		s.setLockPeriod(a, types.Hash{byte(i)}, LockPeriod{Begin: uint64(i), End: uint64(i + 1)})
	}

	var runs [][]lockKey
	for i := 0; i < 3; i++ {
		entries := s.snapshotLockPeriods()
		keys := make([]lockKey, len(entries))
		for j, e := range entries {
			keys[j] = e.Key
		}
		runs = append(runs, keys)
	}
	for i := 1; i < len(runs); i++ {
		if len(runs[i]) != len(runs[0]) {
			t.Fatalf("run %d length %d != run 0 length %d", i, len(runs[i]), len(runs[0]))
		}
		for j := range runs[0] {
			if runs[i][j] != runs[0][j] {
				t.Fatalf("run %d diverges from run 0 at index %d: %+v vs %+v", i, j, runs[i][j], runs[0][j])
			}
		}
	}
	// Accounts should come out sorted ascending by address bytes: 1, 2, 3.
	want := []byte{1, 2, 3}
	for i, e := range s.snapshotLockPeriods() {
		if e.Key.Account[len(e.Key.Account)-1] != want[i] {
			t.Fatalf("entry %d account = %v, want last byte %d", i, e.Key.Account, want[i])
		}
	}
}

func TestSnapshotOwnersDeterministicOrder(t *testing.T) {
	s := newStore()
	names := []string{"zeta", "alpha", "mu"}
	for _, n := range names {
		s.setOwner(types.NameFromString(n), Owner{ID: account(1)})
	}
	entries := s.snapshotOwners()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].NameKey != "alpha" || entries[1].NameKey != "mu" || entries[2].NameKey != "zeta" {
		t.Fatalf("order = %v, want alpha, mu, zeta", entries)
	}
}

func TestTakeLockPeriodAtomicity(t *testing.T) {
	s := newStore()
	a := account(1)
	h := types.HexToHash("0x01")
	s.setLockPeriod(a, h, LockPeriod{Begin: 1, End: 2})

	if !s.hasLockPeriod(a, h) {
		t.Fatal("expected row present before take")
	}
	p, ok := s.takeLockPeriod(a, h)
	if !ok || p.Begin != 1 || p.End != 2 {
		t.Fatalf("takeLockPeriod = %+v, %v, want {1,2}, true", p, ok)
	}
	if s.hasLockPeriod(a, h) {
		t.Fatal("row should be gone after take")
	}
	if _, ok := s.takeLockPeriod(a, h); ok {
		t.Fatal("second take should report absent")
	}
}

func TestActiveCommitsCounts(t *testing.T) {
	s := newStore()
	a, b := account(1), account(2)
	s.setLockPeriod(a, types.HexToHash("0x01"), LockPeriod{})
	s.setLockPeriod(a, types.HexToHash("0x02"), LockPeriod{})
	s.setLockPeriod(b, types.HexToHash("0x03"), LockPeriod{})

	if got := s.activeCommits(a); got != 2 {
		t.Fatalf("activeCommits(a) = %d, want 2", got)
	}
	if got := s.activeCommits(b); got != 1 {
		t.Fatalf("activeCommits(b) = %d, want 1", got)
	}
}
