package search

import (
	"sync"

	"github.com/pkg/errors"
)

// CompareResult reports whether two or more strategies produced the same
// set of complete boards for the same problem.
type CompareResult struct {
	Strategies []Strategy
	Counts     map[Strategy]int
	Equal      bool
}

// CompareStrategies runs Solutions once per strategy in strategies (or
// all three, if none are given) against the same r, c, counts and
// reports whether they all produced the same set of complete boards,
// compared by CanonicalKey. Per §5, the strategies run concurrently in
// their own goroutines purely to cross-check their outputs against each
// other, never to speed up a single search: each goroutine drains its
// own Solutions channel to completion independently of the others, and
// CompareStrategies joins on all of them before comparing key sets.
func CompareStrategies(r, c int, counts map[byte]int, strategies ...Strategy) (CompareResult, error) {
	if len(strategies) == 0 {
		strategies = []Strategy{StrategyStack, StrategyRecursive, StrategyQueue}
	}

	keySets := make([]map[string]struct{}, len(strategies))
	errs := make([]error, len(strategies))

	var wg sync.WaitGroup
	wg.Add(len(strategies))
	for i, strat := range strategies {
		go func(i int, strat Strategy) {
			defer wg.Done()

			out, stop, err := Solutions(r, c, counts, WithStrategy(strat))
			if err != nil {
				errs[i] = errors.Wrapf(err, "strategy %d", strat)
				return
			}
			defer stop()

			keys := map[string]struct{}{}
			for b := range out {
				keys[b.CanonicalKey(r, c).String()] = struct{}{}
			}
			keySets[i] = keys
		}(i, strat)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return CompareResult{}, err
		}
	}

	result := CompareResult{Strategies: strategies, Counts: map[Strategy]int{}}
	for i, strat := range strategies {
		result.Counts[strat] = len(keySets[i])
	}

	result.Equal = true
	for i := 1; i < len(keySets); i++ {
		if !sameKeySet(keySets[0], keySets[i]) {
			result.Equal = false
			break
		}
	}
	return result, nil
}

func sameKeySet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
