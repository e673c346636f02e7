package dataprocessing

import (
	"furncli/internal/errors"
)

// Mode returns the most frequent non-null value in the sequence. Ties
// break toward the value seen first. All-null input has no mode and
// yields an imputation error.
func Mode(values []*string) (string, error) {
	counts := make(map[string]int)
	var order []string

	for _, v := range values {
		if v == nil || *v == "" {
			continue
		}
		if _, seen := counts[*v]; !seen {
			order = append(order, *v)
		}
		counts[*v]++
	}

	if len(order) == 0 {
		return "", errors.NewImputationError("no mode exists: all values are null")
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, nil
}
