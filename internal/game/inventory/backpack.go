// Package inventory tracks the items the player has picked up.
package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Item is one acquired entry in the backpack.
type Item struct {
	// InstanceID uniquely identifies this acquisition.
	InstanceID string
	// Name is the item name as granted by a room or artifact.
	Name string
}

// Backpack is an ordered, append-only item collection.
//
// Invariant: items only grow; insertion order is preserved.
type Backpack struct {
	// Dedupe skips acquiring an item whose name is already held.
	Dedupe bool
	items  []Item
}

// NewBackpack creates an empty Backpack with the given duplicate policy.
//
// Postcondition: returned Backpack has zero items.
func NewBackpack(dedupe bool) *Backpack {
	return &Backpack{Dedupe: dedupe}
}

// Acquire adds name to the backpack.
//
// Precondition: name must be non-empty.
// Postcondition: returns the new Item and true, or the zero Item and false when
// Dedupe is set and name is already held.
func (b *Backpack) Acquire(name string) (Item, bool) {
	if b.Dedupe && b.Has(name) {
		return Item{}, false
	}
	it := Item{InstanceID: uuid.New().String(), Name: name}
	b.items = append(b.items, it)
	return it, true
}

// Has reports whether an item named name is held.
func (b *Backpack) Has(name string) bool {
	for _, it := range b.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Count returns how many entries named name are held.
func (b *Backpack) Count(name string) int {
	n := 0
	for _, it := range b.items {
		if it.Name == name {
			n++
		}
	}
	return n
}

// Items returns a snapshot copy of all items in acquisition order.
//
// Postcondition: returned slice is a copy; mutations do not affect the backpack.
func (b *Backpack) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Names returns the item names in acquisition order.
func (b *Backpack) Names() []string {
	out := make([]string, len(b.items))
	for i, it := range b.items {
		out[i] = it.Name
	}
	return out
}

// Len returns the number of held entries.
func (b *Backpack) Len() int {
	return len(b.items)
}

// Render formats the numbered inventory listing.
func (b *Backpack) Render() string {
	if len(b.items) == 0 {
		return "Your inventory is empty."
	}
	var sb strings.Builder
	sb.WriteString("Your inventory:")
	for i, it := range b.items {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, it.Name)
	}
	return sb.String()
}
