package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capitolstays/valuation-backend-go/internal/config"
	"github.com/capitolstays/valuation-backend-go/internal/dataset"
	"github.com/capitolstays/valuation-backend-go/internal/features"
	"github.com/capitolstays/valuation-backend-go/internal/forest"
	"github.com/capitolstays/valuation-backend-go/internal/models"
	"github.com/capitolstays/valuation-backend-go/internal/repository"
	"github.com/capitolstays/valuation-backend-go/internal/stats"
)

// ErrModelNotReady is returned when an appraisal arrives before the startup
// training step has completed.
var ErrModelNotReady = errors.New("valuation model not trained")

// Location strategies, keyed to the distance bands of the advisor: inside the
// prime radius premium pricing works, beyond the outer radius the listing
// competes on volume.
const (
	StrategyPrime    = "prime"
	StrategyBalanced = "balanced"
	StrategyVolume   = "volume"
)

// ValuationService owns the trained model and runs the full appraisal
// pipeline: validate, derive features, predict, compute returns. The model is
// swapped atomically on retrain; appraisals take only a read lock.
type ValuationService struct {
	market   config.MarketConfig
	modelCfg forest.Config
	deriver  *features.Deriver
	listings *repository.ListingRepository
	runs     *repository.TrainingRunRepository
	roi      *ROIService

	mu      sync.RWMutex
	model   *forest.Forest
	version string
}

// NewValuationService creates a new valuation service
func NewValuationService(
	market config.MarketConfig,
	modelCfg forest.Config,
	deriver *features.Deriver,
	listings *repository.ListingRepository,
	runs *repository.TrainingRunRepository,
	roi *ROIService,
) *ValuationService {
	return &ValuationService{
		market:   market,
		modelCfg: modelCfg,
		deriver:  deriver,
		listings: listings,
		runs:     runs,
		roi:      roi,
	}
}

// Bootstrap imports the cleaned corpus and trains the initial model. It runs
// once at startup and blocks serving; any failure fails the whole startup.
func (s *ValuationService) Bootstrap(datasetPath string) error {
	corpus, err := dataset.LoadFile(datasetPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	if err := s.listings.ReplaceAll(corpus); err != nil {
		return fmt.Errorf("failed to import corpus: %w", err)
	}
	log.Printf("Imported %d listings from %s", len(corpus), datasetPath)

	run, err := s.Train()
	if err != nil {
		return err
	}
	log.Printf("Model %s trained: %d trees, %d train / %d test samples, MAE %.2f, RMSE %.2f, R2 %.3f",
		run.ID, run.TreeCount, run.TrainSamples, run.TestSamples, run.MAE, run.RMSE, run.R2)
	return nil
}

// Train fits a new forest against the stored corpus, reports held-out error
// metrics, persists the run, and swaps the live model.
func (s *ValuationService) Train() (*models.TrainingRun, error) {
	started := time.Now()

	corpus, err := s.listings.List()
	if err != nil {
		return nil, err
	}

	vectors := make([][]float64, 0, len(corpus))
	targets := make([]float64, 0, len(corpus))
	for i, l := range corpus {
		v, err := s.deriver.Derive(l)
		if err != nil {
			return nil, fmt.Errorf("corpus listing %d: %w", i, err)
		}
		vectors = append(vectors, v)
		targets = append(targets, l.Price)
	}

	trainX, trainY, testX, testY := split(vectors, targets, s.modelCfg.Seed)

	model, err := forest.Train(trainX, trainY, s.modelCfg)
	if err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}

	// Score the held-out split; with a corpus too small to hold anything
	// out, report in-sample error instead.
	evalX, evalY := testX, testY
	if len(evalX) == 0 {
		evalX, evalY = trainX, trainY
	}
	predicted := make([]float64, len(evalX))
	for i, v := range evalX {
		p, err := model.Predict(v)
		if err != nil {
			return nil, err
		}
		predicted[i] = p
	}

	run := &models.TrainingRun{
		ID:           uuid.NewString(),
		Seed:         s.modelCfg.Seed,
		TreeCount:    model.TreeCount(),
		TrainSamples: len(trainX),
		TestSamples:  len(testX),
		MAE:          stats.MAE(predicted, evalY),
		RMSE:         stats.RMSE(predicted, evalY),
		R2:           stats.R2(predicted, evalY),
		DurationMs:   time.Since(started).Milliseconds(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.runs.Create(run); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.model = model
	s.version = run.ID
	s.mu.Unlock()

	return run, nil
}

// Appraise runs one synchronous pipeline pass for a request: derivation,
// prediction, return calculation. It either returns a full response or fails
// before producing one.
func (s *ValuationService) Appraise(req *models.ValuationRequest) (*models.ValuationResponse, error) {
	vec, err := s.deriver.Derive(req.Listing())
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	model, version := s.model, s.version
	s.mu.RUnlock()
	if model == nil {
		return nil, ErrModelNotReady
	}

	rate, err := model.Predict(vec)
	if err != nil {
		return nil, err
	}

	roi, err := s.roi.ComputeFromAssumptions(rate, req.Assumptions)
	if err != nil {
		return nil, err
	}

	dist := features.DistanceOf(vec)
	return &models.ValuationResponse{
		Prediction: models.Prediction{
			NightlyRate:  rate,
			ModelVersion: version,
		},
		ROI:        *roi,
		DistanceKm: dist,
		Strategy:   s.strategyFor(dist),
	}, nil
}

// Ready reports whether a trained model is live.
func (s *ValuationService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model != nil
}

// TrainingRuns lists past training runs, newest first.
func (s *ValuationService) TrainingRuns(limit int) ([]models.TrainingRun, error) {
	return s.runs.List(limit)
}

func (s *ValuationService) strategyFor(distKm float64) string {
	switch {
	case distKm < s.market.PrimeRadiusKm:
		return StrategyPrime
	case distKm > s.market.OuterRadiusKm:
		return StrategyVolume
	default:
		return StrategyBalanced
	}
}

// split shuffles the corpus with the training seed and holds out 20% for
// error reporting. Corpora under 10 rows train on everything.
func split(vectors [][]float64, targets []float64, seed int64) (trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) {
	n := len(vectors)
	if n < 10 {
		return vectors, targets, nil, nil
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	testSize := n / 5

	for i, idx := range perm {
		if i < testSize {
			testX = append(testX, vectors[idx])
			testY = append(testY, targets[idx])
		} else {
			trainX = append(trainX, vectors[idx])
			trainY = append(trainY, targets[idx])
		}
	}
	return trainX, trainY, testX, testY
}
