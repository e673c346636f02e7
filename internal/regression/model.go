// Package regression fits the ordinary least squares model predicting
// units sold from price and evaluates it on a deterministic held-out
// split.
package regression

import (
	"fmt"
	"math"
	"math/rand"

	"furncli/internal/errors"
	"furncli/pkg/contracts/domain"
)

// Model holds the fitted coefficients of sold = intercept + slope*x.
// It is immutable once fitted.
type Model struct {
	Feature   string
	Intercept float64
	Slope     float64
}

// Predict returns the model's estimate for one feature value.
func (m *Model) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// Options controls the evaluation split. The seed and fraction come
// from configuration so repeated runs are identical.
type Options struct {
	TestFraction float64
	Seed         int64
}

// FitAndEvaluate fits sold on price over the training portion of the
// dataset and reports R² and RMSE on the held-out portion. Fewer than
// two distinct price values make the slope undefined.
func FitAndEvaluate(ds *domain.Dataset, opts Options) (*Model, domain.RegressionSummary, error) {
	prices, sold := ds.PricePairs()

	if distinctCount(prices) < 2 {
		return nil, domain.RegressionSummary{}, errors.NewInsufficientDataError(
			fmt.Sprintf("need at least 2 distinct price values, got %d", distinctCount(prices)))
	}

	trainIdx, testIdx := split(len(prices), opts)

	trainX := pick(prices, trainIdx)
	trainY := pick(sold, trainIdx)

	// The shuffled training subset can itself be degenerate.
	if distinctCount(trainX) < 2 {
		return nil, domain.RegressionSummary{}, errors.NewInsufficientDataError(
			"training split has fewer than 2 distinct price values")
	}

	model := fit(trainX, trainY)
	model.Feature = domain.ColumnPrice

	evalX := pick(prices, testIdx)
	evalY := pick(sold, testIdx)
	// Datasets too small to hold out anything are evaluated on the
	// training data so the metrics stay defined.
	if len(evalX) == 0 {
		evalX, evalY = trainX, trainY
	}

	r2, rmse := evaluate(model, evalX, evalY)

	summary := domain.RegressionSummary{
		Feature:   model.Feature,
		Intercept: model.Intercept,
		Slope:     model.Slope,
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
		R2:        r2,
		RMSE:      rmse,
		Seed:      opts.Seed,
	}
	return model, summary, nil
}

// fit computes the closed-form OLS solution for one feature.
func fit(xs, ys []float64) *Model {
	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX float64
	for i := range xs {
		dx := xs[i] - meanX
		cov += dx * (ys[i] - meanY)
		varX += dx * dx
	}

	slope := cov / varX
	return &Model{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}
}

// evaluate computes R² and RMSE of the model over the given pairs.
func evaluate(m *Model, xs, ys []float64) (r2, rmse float64) {
	n := float64(len(ys))

	var meanY float64
	for _, y := range ys {
		meanY += y
	}
	meanY /= n

	var ssRes, ssTot float64
	for i := range xs {
		residual := ys[i] - m.Predict(xs[i])
		ssRes += residual * residual
		d := ys[i] - meanY
		ssTot += d * d
	}

	rmse = math.Sqrt(ssRes / n)
	if ssTot == 0 {
		// A constant target is explained exactly iff residuals vanish.
		if ssRes == 0 {
			return 1, rmse
		}
		return 0, rmse
	}
	return 1 - ssRes/ssTot, rmse
}

// split shuffles the observation indices with the fixed seed and cuts
// off the trailing test fraction. The shuffle touches indices only,
// never the dataset itself.
func split(n int, opts Options) (train, test []int) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	testSize := int(math.Round(float64(n) * opts.TestFraction))
	if testSize >= n {
		testSize = n - 1
	}

	cut := n - testSize
	return indices[:cut], indices[cut:]
}

func pick(values []float64, indices []int) []float64 {
	out := make([]float64, 0, len(indices))
	for _, i := range indices {
		out = append(out, values[i])
	}
	return out
}

func distinctCount(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
