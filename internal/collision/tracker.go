// Package collision tracks name-to-hash assignments and detects hash
// collisions when feature, category, or column names are interned to a
// 64-bit key (xxHash64, via internal/hash).
package collision

import (
	"github.com/lophi-data/lophi/internal/errs"
)

// Tracker tracks names and detects hash collisions as they are interned.
// It maintains a map of hash-to-name mappings and an ordered list of names
// in first-seen order, used by the column store for column-name interning.
type Tracker struct {
	names     map[uint64]string // hash -> name
	namesList []string          // ordered list, first-seen order
	collision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// TrackHash tracks a hash with no associated name (e.g. a pair key derived
// from two column hashes XORed together). Returns ErrHashCollision if the
// hash was already used by some other key.
func (t *Tracker) TrackHash(hash uint64) error {
	if _, exists := t.names[hash]; exists {
		return errs.ErrHashCollision
	}
	t.names[hash] = ""

	return nil
}

// TrackName interns a name under its hash.
//
// Returns ErrEmptyName if name is empty, ErrDuplicateName if the exact same
// name was already interned. A hash collision between two *distinct* names
// sets the collision flag but is not an error — callers (e.g. the column
// store) can fall back to linear name comparison when HasCollision is
// true.
func (t *Tracker) TrackName(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return errs.ErrDuplicateName
		}
		t.collision = true
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision reports whether two distinct names were ever seen under the
// same hash.
func (t *Tracker) HasCollision() bool {
	return t.collision
}

// Names returns the interned names in first-seen order.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of interned names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and the collision flag, allowing the
// tracker to be reused for a new analysis run.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.collision = false
}
