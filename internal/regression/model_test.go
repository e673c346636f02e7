package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furncli/internal/errors"
	"furncli/pkg/contracts/domain"
)

func datasetFromPairs(pairs [][2]float64) *domain.Dataset {
	ds := &domain.Dataset{Cleaned: true}
	for _, p := range pairs {
		price := p[0]
		sold := int64(p[1])
		ds.Records = append(ds.Records, domain.ProductRecord{
			Price: &price,
			Sold:  &sold,
		})
	}
	return ds
}

func defaultOptions() Options {
	return Options{TestFraction: 0.2, Seed: 42}
}

func TestFitAndEvaluate_PerfectLinearRelation(t *testing.T) {
	// sold = 1000 - 1*price, exactly.
	var pairs [][2]float64
	for price := 100.0; price <= 900; price += 40 {
		pairs = append(pairs, [2]float64{price, 1000 - price})
	}

	model, summary, err := FitAndEvaluate(datasetFromPairs(pairs), defaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, model.Intercept, 1e-6)
	assert.InDelta(t, -1.0, model.Slope, 1e-9)
	assert.InDelta(t, 1.0, summary.R2, 1e-9)
	assert.InDelta(t, 0.0, summary.RMSE, 1e-6)
}

func TestFitAndEvaluate_SplitSizes(t *testing.T) {
	var pairs [][2]float64
	for i := 0; i < 20; i++ {
		pairs = append(pairs, [2]float64{float64(i + 1), float64(100 - i)})
	}

	_, summary, err := FitAndEvaluate(datasetFromPairs(pairs), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 16, summary.TrainSize)
	assert.Equal(t, 4, summary.TestSize)
	assert.Equal(t, int64(42), summary.Seed)
}

func TestFitAndEvaluate_Deterministic(t *testing.T) {
	var pairs [][2]float64
	for i := 0; i < 30; i++ {
		pairs = append(pairs, [2]float64{float64(10 + i*7%40), float64(500 - i*3)})
	}

	_, first, err := FitAndEvaluate(datasetFromPairs(pairs), defaultOptions())
	require.NoError(t, err)
	_, second, err := FitAndEvaluate(datasetFromPairs(pairs), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFitAndEvaluate_SeedChangesSplit(t *testing.T) {
	var pairs [][2]float64
	for i := 0; i < 30; i++ {
		pairs = append(pairs, [2]float64{float64(i + 1), float64(i*i - 4*i + 7)})
	}

	_, a, err := FitAndEvaluate(datasetFromPairs(pairs), Options{TestFraction: 0.2, Seed: 1})
	require.NoError(t, err)
	_, b, err := FitAndEvaluate(datasetFromPairs(pairs), Options{TestFraction: 0.2, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a.RMSE, b.RMSE)
}

func TestFitAndEvaluate_InsufficientData(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]float64
	}{
		{"empty dataset", nil},
		{"single observation", [][2]float64{{10, 5}}},
		{"single distinct price", [][2]float64{{10, 5}, {10, 8}, {10, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FitAndEvaluate(datasetFromPairs(tt.pairs), defaultOptions())
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeInsufficientData))
		})
	}
}

func TestFitAndEvaluate_TinyDatasetEvaluatesOnTrain(t *testing.T) {
	pairs := [][2]float64{{10, 20}, {20, 40}}

	_, summary, err := FitAndEvaluate(datasetFromPairs(pairs), defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TrainSize)
	assert.Zero(t, summary.TestSize)
	assert.InDelta(t, 1.0, summary.R2, 1e-9)
}

func TestModel_Predict(t *testing.T) {
	m := &Model{Intercept: 10, Slope: -0.01}

	assert.InDelta(t, 8.0, m.Predict(200), 1e-9)
	assert.InDelta(t, 10.0, m.Predict(0), 1e-9)
}
