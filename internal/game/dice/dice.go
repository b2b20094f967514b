// Package dice provides the randomness abstraction behind every chance-based
// decision in the adventure: coin flips, probability checks and sampling.
package dice

// Source is the randomness provider for all draws.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
