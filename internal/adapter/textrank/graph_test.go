package textrank

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{"identical", []float64{1, 1}, []float64{1, 1}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"zero vector left", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"zero vector right", []float64{1, 1}, []float64{0, 0}, 0.0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatalf("cosineSimilarity returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBuildGraph_Complete(t *testing.T) {
	vectors := [][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
	}

	g := BuildGraph(vectors)

	if g.Size() != 3 {
		t.Fatalf("expected 3 nodes, got %d", g.Size())
	}

	for i := 0; i < 3; i++ {
		if g.Weight(i, i) != 0 {
			t.Errorf("expected no self-loop at node %d, got %f", i, g.Weight(i, i))
		}
		for j := 0; j < 3; j++ {
			if g.Weight(i, j) != g.Weight(j, i) {
				t.Errorf("expected symmetric weights at (%d,%d)", i, j)
			}
		}
	}

	// (1,0) vs (1,1) = 1/sqrt(2)
	want := 1 / math.Sqrt(2)
	if math.Abs(g.Weight(0, 2)-want) > 1e-9 {
		t.Errorf("Weight(0,2) = %f, want %f", g.Weight(0, 2), want)
	}
}

func TestBuildGraph_ClampsNegative(t *testing.T) {
	g := BuildGraph([][]float64{
		{1, 0},
		{-1, 0},
	})

	if g.Weight(0, 1) != 0 {
		t.Errorf("expected negative cosine clamped to 0, got %f", g.Weight(0, 1))
	}
}

func TestBuildGraph_ZeroVectorIsolated(t *testing.T) {
	g := BuildGraph([][]float64{
		{1, 1},
		{0, 0},
		{2, 1},
	})

	if g.Weight(0, 1) != 0 || g.Weight(1, 2) != 0 {
		t.Error("expected zero-vector node to have zero-weight edges")
	}
	if g.OutWeight(1) != 0 {
		t.Errorf("expected isolated node out-weight 0, got %f", g.OutWeight(1))
	}
	if g.OutWeight(0) == 0 {
		t.Error("expected non-isolated node to have positive out-weight")
	}
}
