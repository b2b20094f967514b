// Package clue holds the library clue pool and the set of clues the player
// has learned.
package clue

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Set is the unordered collection of discovered clues.
//
// Invariant: the set never shrinks and holds each clue at most once.
type Set struct {
	clues mapset.Set[string]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{clues: mapset.New[string]()}
}

// Add records clue and reports whether it was new.
func (s *Set) Add(clue string) bool {
	if s.clues.Has(clue) {
		return false
	}
	s.clues.Put(clue)
	return true
}

// Has reports whether clue is known.
func (s *Set) Has(clue string) bool {
	return s.clues.Has(clue)
}

// Len returns the number of known clues.
func (s *Set) Len() int {
	return s.clues.Size()
}

// Sorted returns the known clues in lexical order for stable display.
func (s *Set) Sorted() []string {
	out := make([]string, 0, s.clues.Size())
	s.clues.Each(func(c string) {
		out = append(out, c)
	})
	sort.Strings(out)
	return out
}
