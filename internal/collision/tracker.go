// Package collision guards the xxHash64-keyed type registries in extobj and
// schema against name collisions. Unlike a per-blob metric-name stream,
// registrations happen once at startup against a fixed type set, so any hash
// collision there is a genuine conflict to reject rather than data to
// tolerate.
package collision

import "github.com/ua-stack/uacodec/errs"

// Tracker maps hashes to the registered name that produced them, so a
// second registration under a different name but the same hash is caught
// before it can shadow the first.
type Tracker struct {
	names map[uint64]string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{names: make(map[uint64]string)}
}

// Track records name under hash, returning errs.ErrDuplicateName if name was
// already registered and errs.ErrHashCollision if a different name already
// produced the same hash.
func (t *Tracker) Track(name string, hash uint64) error {
	if existing, ok := t.names[hash]; ok {
		if existing == name {
			return errs.ErrDuplicateName
		}

		return errs.ErrHashCollision
	}

	t.names[hash] = name
	return nil
}

// Lookup returns the name registered under hash, if any.
func (t *Tracker) Lookup(hash uint64) (string, bool) {
	name, ok := t.names[hash]
	return name, ok
}

// Count returns the number of distinct hashes tracked.
func (t *Tracker) Count() int {
	return len(t.names)
}
