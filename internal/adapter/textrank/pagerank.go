package textrank

import "math"

// Default ranking parameters, matching the usual PageRank settings.
const (
	DefaultDamping = 0.85
	DefaultMaxIter = 100
	DefaultTol     = 1e-6
)

// Rank runs damped power iteration over the similarity graph and returns
// one centrality score per node. Scores start at 1/N and are updated
// synchronously from the previous full vector, so iteration order over
// nodes cannot change the result.
//
// Iteration stops when the L1 change between successive vectors drops
// below tol, or after maxIter rounds. Hitting the cap is not an error:
// the last iterate is returned as a best-effort ranking, and maxIter is
// the only bound on work for graphs that never settle.
func Rank(g *Graph, damping float64, maxIter int, tol float64) []float64 {
	n := g.Size()
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	outWeights := make([]float64, n)
	for j := 0; j < n; j++ {
		outWeights[j] = g.OutWeight(j)
	}

	next := make([]float64, n)
	base := (1 - damping) / float64(n)

	for iter := 0; iter < maxIter; iter++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if j == i || outWeights[j] == 0 {
					continue
				}
				sum += g.Weight(i, j) / outWeights[j] * scores[j]
			}
			next[i] = base + damping*sum
		}

		delta := 0.0
		for i := 0; i < n; i++ {
			delta += math.Abs(next[i] - scores[i])
		}

		scores, next = next, scores

		if delta < tol {
			break
		}
	}

	return scores
}
