package stats

import "math"

// Regression error metrics reported after training. Each expects predicted
// and actual slices of equal length; mismatched or empty input yields 0.

// MAE calculates the mean absolute error
func MAE(predicted, actual []float64) float64 {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return 0
	}

	var sum float64
	for i, p := range predicted {
		sum += math.Abs(p - actual[i])
	}
	return sum / float64(len(predicted))
}

// RMSE calculates the root mean squared error
func RMSE(predicted, actual []float64) float64 {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return 0
	}

	var sum float64
	for i, p := range predicted {
		diff := p - actual[i]
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(predicted)))
}

// R2 calculates the coefficient of determination. A constant actual series
// has no variance to explain and yields 0.
func R2(predicted, actual []float64) float64 {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return 0
	}

	mean := Mean(actual)
	var ssRes, ssTot float64
	for i, a := range actual {
		res := a - predicted[i]
		tot := a - mean
		ssRes += res * res
		ssTot += tot * tot
	}

	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
