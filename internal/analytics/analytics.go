// Package analytics computes the descriptive statistics of the report:
// mean units sold per tag, the price distribution and the price/sold
// correlation. All functions operate on cleaned, non-null values only
// and fail explicitly on empty input instead of returning NaN.
package analytics

import (
	"math"
	"sort"

	"furncli/internal/errors"
	"furncli/pkg/contracts/domain"
)

// MeanSoldByTag groups records by tag and returns the mean units sold
// per group, ordered by descending mean. Groups with equal means keep
// their first-seen order.
func MeanSoldByTag(ds *domain.Dataset) ([]domain.TagMean, error) {
	if ds.IsEmpty() {
		return nil, errors.NewEmptyDatasetError("cannot group an empty dataset")
	}

	type group struct {
		sum   float64
		count int
		order int
	}
	groups := make(map[string]*group)
	var tags []string

	for _, r := range ds.Records {
		if r.TagText == nil || r.Sold == nil {
			continue
		}
		g, seen := groups[*r.TagText]
		if !seen {
			g = &group{order: len(tags)}
			groups[*r.TagText] = g
			tags = append(tags, *r.TagText)
		}
		g.sum += float64(*r.Sold)
		g.count++
	}

	if len(tags) == 0 {
		return nil, errors.NewEmptyDatasetError("no records with both tag and sold values")
	}

	means := make([]domain.TagMean, 0, len(tags))
	for _, tag := range tags {
		g := groups[tag]
		means = append(means, domain.TagMean{
			Tag:      tag,
			Count:    g.count,
			MeanSold: g.sum / float64(g.count),
		})
	}

	sort.SliceStable(means, func(i, j int) bool {
		return means[i].MeanSold > means[j].MeanSold
	})

	return means, nil
}

// PriceDistribution computes count, mean, sample standard deviation,
// min, max and quartiles of the cleaned price column.
func PriceDistribution(ds *domain.Dataset) (domain.Distribution, error) {
	var values []float64
	for _, r := range ds.Records {
		if r.Price != nil {
			values = append(values, *r.Price)
		}
	}

	if len(values) == 0 {
		return domain.Distribution{}, errors.NewEmptyDatasetError("no price values to summarize")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	dist := domain.Distribution{
		Column: domain.ColumnPrice,
		Count:  len(values),
		Mean:   mean(values),
		StdDev: stdDev(values),
		Min:    sorted[0],
		Q25:    percentileValue(sorted, 0.25),
		Median: percentileValue(sorted, 0.50),
		Q75:    percentileValue(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
	return dist, nil
}

// PearsonCorrelation computes the correlation between price and sold
// over records where both values are present.
func PearsonCorrelation(ds *domain.Dataset) (float64, error) {
	prices, sold := ds.PricePairs()
	if len(prices) == 0 {
		return 0, errors.NewEmptyDatasetError("no paired price and sold values")
	}

	meanX := mean(prices)
	meanY := mean(sold)

	var cov, varX, varY float64
	for i := range prices {
		dx := prices[i] - meanX
		dy := sold[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		// A constant series has no defined correlation.
		return 0, nil
	}
	return cov / math.Sqrt(varX*varY), nil
}

// mean returns the arithmetic mean. Callers guarantee len > 0.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the sample standard deviation (n-1 denominator).
func stdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// percentileValue interpolates linearly between the two closest ranks
// of an already-sorted slice.
func percentileValue(sorted []float64, percentile float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if percentile <= 0 {
		return sorted[0]
	}
	if percentile >= 1 {
		return sorted[n-1]
	}

	index := percentile * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
