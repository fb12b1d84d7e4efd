package sampling

import (
	"fmt"
	"math"
	"sort"
)

// Weighted is a precomputed discrete distribution. The cumulative sum
// is built once so each draw costs a single binary search, which keeps
// per-item product selection cheap at thousand-row scale.
type Weighted struct {
	cum   []float64
	total float64
}

// NewWeighted builds a distribution over len(weights) options. Weights
// must be non-negative with a positive sum; they do not need to be
// normalized.
func NewWeighted(weights []float64) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("weighted distribution requires at least one option")
	}
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("weight %d is invalid: %v", i, w)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("weights sum to %v, expected a positive total", total)
	}
	return &Weighted{cum: cum, total: total}, nil
}

// Draw returns one index distributed according to the weights.
func (w *Weighted) Draw(s *Source) int {
	target := s.Float64() * w.total
	i := sort.SearchFloat64s(w.cum, target)
	if i >= len(w.cum) {
		i = len(w.cum) - 1
	}
	return i
}

// WeightedSample draws k distinct indices without replacement, with
// inclusion probability proportional to weight. It uses the
// Efraimidis-Spirakis key method (rank by u^(1/w)) so the cost stays
// near-linear instead of redrawing with rejection.
func (s *Source) WeightedSample(weights []float64, k int) ([]int, error) {
	if k < 0 || k > len(weights) {
		return nil, fmt.Errorf("cannot sample %d values from a population of %d", k, len(weights))
	}
	type keyed struct {
		idx int
		key float64
	}
	keys := make([]keyed, len(weights))
	for i, w := range weights {
		if w <= 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("weight %d is invalid for sampling without replacement: %v", i, w)
		}
		keys[i] = keyed{idx: i, key: math.Pow(s.Float64(), 1.0/w)}
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].key > keys[b].key })
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = keys[i].idx
	}
	return out, nil
}
