package forest

import (
	"errors"
	"math"
	"testing"
)

// syntheticCorpus builds n samples over three varied features with targets
// clustered around base.
func syntheticCorpus(n int, base float64) ([][]float64, []float64) {
	features := make([][]float64, n)
	targets := make([]float64, n)
	for i := 0; i < n; i++ {
		x0 := float64(i % 7)
		x1 := float64(i % 5)
		x2 := float64(i) / float64(n)
		features[i] = []float64{x0, x1, x2}
		targets[i] = base + 2*x0 - 1.5*x1
	}
	return features, targets
}

func TestTrainEmptyCorpus(t *testing.T) {
	if _, err := Train(nil, nil, DefaultConfig()); !errors.Is(err, ErrInsufficientTrainingData) {
		t.Errorf("Train(empty) error = %v, want ErrInsufficientTrainingData", err)
	}
}

func TestTrainConstantColumn(t *testing.T) {
	features := [][]float64{
		{1, 5, 2},
		{2, 5, 3},
		{3, 5, 4},
	}
	targets := []float64{10, 20, 30}
	if _, err := Train(features, targets, DefaultConfig()); !errors.Is(err, ErrInsufficientTrainingData) {
		t.Errorf("Train with constant column error = %v, want ErrInsufficientTrainingData", err)
	}
}

func TestTrainRaggedRows(t *testing.T) {
	features := [][]float64{
		{1, 2, 3},
		{4, 5},
	}
	targets := []float64{10, 20}
	if _, err := Train(features, targets, DefaultConfig()); !errors.Is(err, ErrFeatureShapeMismatch) {
		t.Errorf("Train with ragged rows error = %v, want ErrFeatureShapeMismatch", err)
	}
}

func TestPredictShapeMismatch(t *testing.T) {
	features, targets := syntheticCorpus(30, 100)
	f, err := Train(features, targets, DefaultConfig())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	// One fewer dimension must fail, never silently truncate or pad.
	if _, err := f.Predict([]float64{1, 2}); !errors.Is(err, ErrFeatureShapeMismatch) {
		t.Errorf("Predict(short vector) error = %v, want ErrFeatureShapeMismatch", err)
	}
	if _, err := f.Predict([]float64{1, 2, 3, 4}); !errors.Is(err, ErrFeatureShapeMismatch) {
		t.Errorf("Predict(long vector) error = %v, want ErrFeatureShapeMismatch", err)
	}
}

func TestPredictDeterministic(t *testing.T) {
	features, targets := syntheticCorpus(60, 150)
	cfg := DefaultConfig()

	f1, err := Train(features, targets, cfg)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	f2, err := Train(features, targets, cfg)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	v := []float64{3, 2, 0.5}
	p1, err := f1.Predict(v)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	p1again, _ := f1.Predict(v)
	p2, _ := f2.Predict(v)

	if p1 != p1again {
		t.Errorf("same model, same vector: %f vs %f", p1, p1again)
	}
	if p1 != p2 {
		t.Errorf("same seed, same corpus: %f vs %f", p1, p2)
	}
}

func TestPredictNonNegative(t *testing.T) {
	// All-negative targets force negative raw outputs; the floor applies.
	features, targets := syntheticCorpus(40, -200)
	f, err := Train(features, targets, DefaultConfig())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	p, err := f.Predict([]float64{3, 2, 0.5})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p != 0 {
		t.Errorf("Predict on negative corpus = %f, want clamped 0", p)
	}
}

func TestPredictWithinCorpusBand(t *testing.T) {
	// Targets land between 144 and 162; the ensemble mean cannot leave the
	// observed range, and a mid-range vector should land near 150.
	features, targets := syntheticCorpus(120, 150)
	f, err := Train(features, targets, DefaultConfig())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	p, err := f.Predict([]float64{3, 2, 0.5})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p < 120 || p > 180 {
		t.Errorf("Predict = %f, want within [120, 180] around the corpus cluster", p)
	}
	if math.IsNaN(p) {
		t.Errorf("Predict returned NaN")
	}
}

func TestTrainSingleSample(t *testing.T) {
	// A one-row corpus has every column trivially constant.
	_, err := Train([][]float64{{1, 2, 3}}, []float64{99}, DefaultConfig())
	if !errors.Is(err, ErrInsufficientTrainingData) {
		t.Errorf("Train(one row) error = %v, want ErrInsufficientTrainingData", err)
	}
}
