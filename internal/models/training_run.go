package models

// TrainingRun records one model fit: the reproducibility inputs and the
// held-out error metrics reported after training.
type TrainingRun struct {
	ID           string  `json:"id"`
	Seed         int64   `json:"seed"`
	TreeCount    int     `json:"tree_count"`
	TrainSamples int     `json:"train_samples"`
	TestSamples  int     `json:"test_samples"`
	MAE          float64 `json:"mae"`
	RMSE         float64 `json:"rmse"`
	R2           float64 `json:"r2"`
	DurationMs   int64   `json:"duration_ms"`
	CreatedAt    string  `json:"created_at"`
}
