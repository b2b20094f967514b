package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// chanceScale is the resolution of Chance draws.
const chanceScale = 1_000_000

// Roller wraps a Source and logger to provide the draws the game needs.
// Every draw is logged at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Coin flips a fair coin. It reports true (success) when the source yields 0.
func (r *Roller) Coin() bool {
	v := r.src.Intn(2)
	r.logger.Debug("coin flip", zap.Int("value", v), zap.Bool("success", v == 0))
	return v == 0
}

// Chance reports true with probability p.
//
// Postcondition: p <= 0 always returns false; p >= 1 always returns true.
func (r *Roller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	v := r.src.Intn(chanceScale)
	hit := v < int(p*chanceScale)
	r.logger.Debug("chance", zap.Float64("p", p), zap.Int("value", v), zap.Bool("hit", hit))
	return hit
}

// Pick returns a uniformly chosen index in [0, n).
//
// Precondition: n > 0.
func (r *Roller) Pick(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("pick", zap.Int("n", n), zap.Int("value", v))
	return v
}

// Sample draws k distinct indices from [0, n) without replacement, in draw order.
//
// Precondition: 0 <= k <= n.
// Postcondition: len(result) == k and no index repeats.
func (r *Roller) Sample(n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("dice: cannot sample %d of %d", k, n)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first k positions hold the sample.
	for i := 0; i < k; i++ {
		j := i + r.src.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := idx[:k:k]
	r.logger.Debug("sample", zap.Int("n", n), zap.Int("k", k), zap.Ints("indices", out))
	return out, nil
}
