package artifact

import (
	"fmt"
	"sort"
)

// Registry holds the artifacts still waiting to be discovered, keyed by name.
//
// Invariant: after construction the registry only shrinks.
type Registry struct {
	artifacts map[string]Artifact
}

// NewRegistry builds a Registry from defs.
//
// Precondition: every def must be valid and names must be unique.
// Postcondition: Returns a Registry holding every def, or an error.
func NewRegistry(defs []Artifact) (*Registry, error) {
	r := &Registry{artifacts: make(map[string]Artifact, len(defs))}
	for _, a := range defs {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("artifact: invalid artifact %q: %w", a.Name, err)
		}
		if _, exists := r.artifacts[a.Name]; exists {
			return nil, fmt.Errorf("artifact: artifact %q already registered", a.Name)
		}
		r.artifacts[a.Name] = a
	}
	return r, nil
}

// Lookup returns the artifact named name without removing it.
//
// Postcondition: ok is true iff the artifact is still undiscovered.
func (r *Registry) Lookup(name string) (Artifact, bool) {
	a, ok := r.artifacts[name]
	return a, ok
}

// Discover removes and returns the artifact named name.
//
// Postcondition: on ok, the artifact is gone and a second Discover of the
// same name reports false.
func (r *Registry) Discover(name string) (Artifact, bool) {
	a, ok := r.artifacts[name]
	if !ok {
		return Artifact{}, false
	}
	delete(r.artifacts, name)
	return a, true
}

// Names returns the undiscovered artifact names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.artifacts))
	for name := range r.artifacts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of undiscovered artifacts.
func (r *Registry) Len() int {
	return len(r.artifacts)
}
