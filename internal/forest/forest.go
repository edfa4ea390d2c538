// Package forest implements a seeded random-forest regressor: bootstrap
// sampling over the corpus, variance-reduction splits, and per-node feature
// subsampling. A fitted Forest is immutable; Predict reads shared state only
// and is safe to call concurrently.
package forest

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInsufficientTrainingData is returned when the corpus is empty or a
	// feature column carries no variance to split on.
	ErrInsufficientTrainingData = errors.New("insufficient training data")

	// ErrFeatureShapeMismatch is returned when a vector's width does not
	// match the width the model was trained on.
	ErrFeatureShapeMismatch = errors.New("feature shape mismatch")
)

// Config holds the training hyperparameters.
type Config struct {
	Trees       int   `yaml:"trees"`
	MaxDepth    int   `yaml:"max_depth"`
	MinLeafSize int   `yaml:"min_leaf_size"`
	Seed        int64 `yaml:"seed"`
}

// DefaultConfig mirrors the production model: 50 trees, fixed seed.
func DefaultConfig() Config {
	return Config{
		Trees:       50,
		MaxDepth:    16,
		MinLeafSize: 2,
		Seed:        42,
	}
}

// Forest is a fitted ensemble. Read-only after Train.
type Forest struct {
	trees []*node
	width int
}

// Train fits a forest against (features, targets) pairs. The same seed and
// corpus always produce the same ensemble.
func Train(features [][]float64, targets []float64, cfg Config) (*Forest, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", ErrInsufficientTrainingData)
	}
	if len(features) != len(targets) {
		return nil, fmt.Errorf("%w: %d feature rows vs %d targets", ErrFeatureShapeMismatch, len(features), len(targets))
	}

	width := len(features[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: zero-width feature vectors", ErrInsufficientTrainingData)
	}
	for i, row := range features {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrFeatureShapeMismatch, i, len(row), width)
		}
	}
	for col := 0; col < width; col++ {
		if constantColumn(features, col) {
			return nil, fmt.Errorf("%w: feature column %d is constant", ErrInsufficientTrainingData, col)
		}
	}

	if cfg.Trees <= 0 {
		cfg.Trees = DefaultConfig().Trees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig().MaxDepth
	}
	if cfg.MinLeafSize <= 0 {
		cfg.MinLeafSize = 1
	}
	mtry := width / 3
	if mtry < 1 {
		mtry = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	f := &Forest{
		trees: make([]*node, cfg.Trees),
		width: width,
	}
	for t := 0; t < cfg.Trees; t++ {
		idx := bootstrap(len(features), rng)
		f.trees[t] = buildTree(features, targets, idx, 0, cfg.MaxDepth, cfg.MinLeafSize, mtry, rng)
	}
	return f, nil
}

// Predict returns the ensemble mean for one feature vector. Raw negative
// outputs are floored at zero: a nightly rate cannot be negative, and the
// floor is a documented policy rather than error suppression.
func (f *Forest) Predict(v []float64) (float64, error) {
	if len(v) != f.width {
		return 0, fmt.Errorf("%w: got %d features, model trained on %d", ErrFeatureShapeMismatch, len(v), f.width)
	}

	var sum float64
	for _, t := range f.trees {
		sum += t.predict(v)
	}
	rate := sum / float64(len(f.trees))
	if rate < 0 {
		rate = 0
	}
	return rate, nil
}

// Width returns the feature-vector width the forest was trained on.
func (f *Forest) Width() int {
	return f.width
}

// TreeCount returns the ensemble size.
func (f *Forest) TreeCount() int {
	return len(f.trees)
}

func bootstrap(n int, rng *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}
	return idx
}

func constantColumn(features [][]float64, col int) bool {
	first := features[0][col]
	for _, row := range features[1:] {
		if row[col] != first {
			return false
		}
	}
	return true
}
