package batch

import (
	"fmt"

	fatigue "Woehler/internal/calc/fatigue"
)

// Calculate evaluates cases in order. The first failing case aborts the whole
// batch: its error carries the 1-based position, and no partial results are
// returned. An empty batch yields an empty result list.
func Calculate(items []fatigue.Input) ([]fatigue.Result, error) {
	results := make([]fatigue.Result, 0, len(items))
	for i, item := range items {
		res, err := fatigue.Calculate(item)
		if err != nil {
			return nil, fmt.Errorf("error in case %d: %w", i+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}
