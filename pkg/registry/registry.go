// Package registry implements the core of a vanity-name registry: an
// on-chain state machine that lets accounts claim, own, renew, and release
// human-readable names through a two-phase commit-reveal protocol, with
// collateral locked against the claimant's balance for the duration of the
// claim.
//
// The package is pure with respect to its host: block numbers, signed-origin
// authentication, hashing, currency locking, and event delivery are all
// supplied through the Clock, Hasher, Origin, Currency, and EventSink
// interfaces. A host runtime drives the state machine by calling the four
// transactional methods (Commit, Reveal, Renew, Unregister) once per
// transaction and OnFinalize once per block boundary.
package registry

import (
	"sync"

	"github.com/vanitychain/registry/core/types"
	"github.com/vanitychain/registry/log"
	"github.com/vanitychain/registry/metrics"
)

// Registry is the commit-reveal state machine described by this package's
// doc comment. The zero value is not usable; construct with New.
type Registry struct {
	mu sync.Mutex

	cfg      Config
	store    *store
	clock    Clock
	hasher   Hasher
	currency Currency
	events   EventSink

	log     *log.Logger
	metrics registryMetrics
}

// registryMetrics bundles the rate counters surfaced for host observability.
// None of this is required by the spec's invariants; it exists so a host
// dashboard has something to plot, the way the teacher's subsystems each
// carry a metrics.Meter for their hot paths.
type registryMetrics struct {
	commits   *metrics.Meter
	reveals   *metrics.Meter
	discredit *metrics.Meter
	expiries  *metrics.Meter
}

func newRegistryMetrics() registryMetrics {
	return registryMetrics{
		commits:   metrics.NewMeter(),
		reveals:   metrics.NewMeter(),
		discredit: metrics.NewMeter(),
		expiries:  metrics.NewMeter(),
	}
}

// New constructs a Registry. clock, hasher, currency, and events must be
// non-nil; New returns an error if cfg fails validation.
func New(cfg Config, clock Clock, hasher Hasher, currency Currency, events EventSink) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil || hasher == nil || currency == nil || events == nil {
		return nil, errNilDependency
	}
	return &Registry{
		cfg:      cfg,
		store:    newStore(),
		clock:    clock,
		hasher:   hasher,
		currency: currency,
		events:   events,
		log:      log.Default().Module("registry"),
		metrics:  newRegistryMetrics(),
	}, nil
}

// commitHash derives Commit = Hash(encode(account) || encode(name)).
func (r *Registry) commitHash(account types.Address, name types.Name) types.Hash {
	return r.hasher.Hash(account.Bytes(), name.Encode())
}

// Commit records a hash commitment for the calling account, replacing any
// existing commitment for the same (account, hash) pair and resetting its
// validity window. See spec §4.1.
func (r *Registry) Commit(origin Origin, hash types.Hash) error {
	who, err := origin.Authenticate()
	if err != nil {
		return ErrBadOrigin
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	period := LockPeriod{Begin: now, End: now + r.cfg.RegisterPeriod}
	r.store.setLockPeriod(who, hash, period)
	r.updateLockedFundLocked(who)

	r.metrics.commits.Mark(1)
	r.log.Info("commit accepted", "account", who, "hash", hash, "begin", period.Begin, "end", period.End)
	return nil
}

// Reveal discloses the name bound to a previously published commit. A
// reveal whose commit begins no earlier than the incumbent owner's is
// discredited: the commit is still consumed, but ownership is unchanged.
// See spec §4.2.
func (r *Registry) Reveal(origin Origin, name types.Name) error {
	who, err := origin.Authenticate()
	if err != nil {
		return ErrBadOrigin
	}
	if verr := name.Validate(r.cfg.NameMaxLen); verr != nil {
		return ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	commit := r.commitHash(who, name)
	newPeriod, ok := r.store.takeLockPeriod(who, commit)
	if !ok {
		return ErrCommitNotFound
	}
	// The commit is consumed here regardless of the ownership outcome below.
	defer r.updateLockedFundLocked(who)

	incumbent, hasIncumbent := r.store.getOwner(name)
	if hasIncumbent && newPeriod.Begin >= incumbent.LockPeriod.Begin {
		r.metrics.discredit.Mark(1)
		r.log.Info("reveal discredited", "name", name, "account", who,
			"revealer_begin", newPeriod.Begin, "incumbent_begin", incumbent.LockPeriod.Begin)
		r.events.Emit(RevealDiscredited{Name: name, Account: who})
		return nil
	}

	var previous *types.Address
	if hasIncumbent {
		prev := incumbent.ID
		previous = &prev
	}
	r.store.setOwner(name, Owner{ID: who, Commit: commit, LockPeriod: newPeriod})
	r.metrics.reveals.Mark(1)
	r.log.Info("name owned", "name", name, "account", who, "previous_owner", previous)
	r.events.Emit(NameOwned{Name: name, Account: who, PreviousOwner: previous})
	return nil
}

// Renew extends the caller's ownership of name by RegisterPeriod blocks
// from now. Only the lock period's end moves; begin is untouched, which
// preserves the earlier-commit-wins precedence established at reveal time.
// See spec §4.3.
func (r *Registry) Renew(origin Origin, name types.Name) error {
	who, err := origin.Authenticate()
	if err != nil {
		return ErrBadOrigin
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.store.getOwner(name)
	if !ok {
		return ErrNameNotFound
	}
	if owner.ID != who {
		return ErrNameNotOwned
	}

	owner.LockPeriod.End = r.clock.Now() + r.cfg.RegisterPeriod
	r.store.setOwner(name, owner)
	r.log.Info("name renewed", "name", name, "account", who, "new_end", owner.LockPeriod.End)
	return nil
}

// Unregister releases the caller's ownership of name immediately. See
// spec §4.4.
func (r *Registry) Unregister(origin Origin, name types.Name) error {
	who, err := origin.Authenticate()
	if err != nil {
		return ErrBadOrigin
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.store.getOwner(name)
	if !ok {
		return ErrNameNotFound
	}
	if owner.ID != who {
		return ErrNameNotOwned
	}

	r.store.deleteOwner(name)
	r.updateLockedFundLocked(who)
	r.log.Info("name freed by unregister", "name", name, "account", who)
	r.events.Emit(NameFreed{Name: name})
	return nil
}

// OnFinalize runs the deterministic end-of-block expiry sweep: pass A
// removes expired commitments, pass B removes expired ownerships. Both
// passes iterate a pre-collected, sorted snapshot so that map mutation
// during iteration can't affect which rows are visited. See spec §4.6.
func (r *Registry) OnFinalize(n uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.store.snapshotLockPeriods() {
		if !entry.Period.expired(n) {
			continue
		}
		if _, ok := r.store.takeLockPeriod(entry.Key.Account, entry.Key.Commit); !ok {
			continue
		}
		r.updateLockedFundLocked(entry.Key.Account)
		r.metrics.expiries.Mark(1)
		r.log.Info("commit expired", "account", entry.Key.Account, "commit", entry.Key.Commit, "block", n)
		r.events.Emit(CommitExpired{Commit: entry.Key.Commit, Account: entry.Key.Account})
	}

	for _, entry := range r.store.snapshotOwners() {
		if !entry.Owner.LockPeriod.expired(n) {
			continue
		}
		name := types.Name(entry.NameKey)
		if _, ok := r.store.getOwner(name); !ok {
			continue
		}
		r.store.deleteOwner(name)
		r.updateLockedFundLocked(entry.Owner.ID)
		r.log.Info("name freed by expiry", "name", name, "account", entry.Owner.ID, "block", n)
		r.events.Emit(NameFreed{Name: name})
	}
}

// updateLockedFundLocked recomputes and applies account's collateral lock.
// Caller must hold r.mu.
func (r *Registry) updateLockedFundLocked(account types.Address) {
	k := r.store.activeCommits(account)
	if k == 0 {
		r.currency.RemoveLock(r.cfg.LockID, account)
		return
	}
	amount := saturatingMul(k, r.cfg.FundToLock)
	r.currency.SetLock(r.cfg.LockID, account, amount)
}
