package textrank

import "math"

// Graph is a complete weighted undirected graph over sentence indices.
// Weights live in [0, 1]; self-loops are excluded by construction.
type Graph struct {
	n       int
	weights [][]float64
}

// BuildGraph computes the pairwise cosine similarity of the sentence
// vectors. Similarity involving a zero vector is 0, and negative cosine
// values are clamped to 0 so that edge weights stay usable as transition
// probabilities.
func BuildGraph(vectors [][]float64) *Graph {
	n := len(vectors)
	weights := make([][]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := cosineSimilarity(vectors[i], vectors[j])
			if sim < 0 {
				sim = 0
			}
			weights[i][j] = sim
			weights[j][i] = sim
		}
	}

	return &Graph{n: n, weights: weights}
}

// Size returns the number of nodes.
func (g *Graph) Size() int {
	return g.n
}

// Weight returns the edge weight between i and j. The diagonal is 0.
func (g *Graph) Weight(i, j int) float64 {
	return g.weights[i][j]
}

// OutWeight returns the total edge weight from node j to all other
// nodes. 0 means j is isolated.
func (g *Graph) OutWeight(j int) float64 {
	total := 0.0
	for k := 0; k < g.n; k++ {
		total += g.weights[j][k]
	}
	return total
}

// cosineSimilarity calculates the cosine similarity between two vectors.
// Defined as 0 when either vector is the zero vector.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
