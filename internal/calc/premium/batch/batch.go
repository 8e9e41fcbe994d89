// Package batch evaluates several blast plans in one request, e.g. the same
// bench under every explosive the quarry stocks.
package batch

import (
	"fmt"

	blastplan "Fogo/internal/calc/blastplan"
)

type Input struct {
	Items []blastplan.Input `json:"items"`
}

type Result struct {
	Results []blastplan.Result `json:"results"`
}

// Calculate evaluates the items in order. Any invalid item fails the whole
// batch; partial results are never returned.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]blastplan.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := blastplan.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
