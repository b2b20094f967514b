// Package testutil provides deterministic fakes shared by package tests.
package testutil

import "sync"

// ScriptedSource returns the scripted values in order, clamped to [0, n).
// Once the script is exhausted the last value repeats; an empty script yields 0.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	calls  int
}

// NewScriptedSource returns a ScriptedSource that replays values.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Intn returns the next scripted value clamped to [0, n).
//
// Precondition: n > 0.
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	v := 0
	switch {
	case s.calls < len(s.values):
		v = s.values[s.calls]
	case len(s.values) > 0:
		v = s.values[len(s.values)-1]
	}
	s.calls++
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// Calls reports how many draws have been made.
func (s *ScriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
