// Package batch implements the settle-all-then-classify pattern for fan-outs
// of independent writes. Every task is attempted regardless of sibling
// failures; only after all have settled does the caller see the succeeded and
// failed sets. Whether partial failure triggers compensation is the caller's
// decision, not this package's.
package batch

import (
	"context"
	"sync"
)

// Failure pairs a task key with the error it settled with.
type Failure[K comparable] struct {
	Key K
	Err error
}

// Result classifies a settled fan-out. Succeeded and Failed preserve the
// input order of their keys.
type Result[K comparable] struct {
	Succeeded []K
	Failed    []Failure[K]
}

// AllSucceeded reports whether no task failed.
func (r Result[K]) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// FailedKeys returns just the keys of the failed tasks.
func (r Result[K]) FailedKeys() []K {
	keys := make([]K, 0, len(r.Failed))
	for _, f := range r.Failed {
		keys = append(keys, f.Key)
	}
	return keys
}

// RunIndependent executes run once per key, concurrently, and waits for every
// task to settle. A task failure never short-circuits its siblings.
func RunIndependent[K comparable](ctx context.Context, keys []K, run func(ctx context.Context, key K) error) Result[K] {
	errs := make([]error, len(keys))

	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key K) {
			defer wg.Done()
			errs[i] = run(ctx, key)
		}(i, key)
	}
	wg.Wait()

	var result Result[K]
	for i, key := range keys {
		if errs[i] != nil {
			result.Failed = append(result.Failed, Failure[K]{Key: key, Err: errs[i]})
			continue
		}
		result.Succeeded = append(result.Succeeded, key)
	}
	return result
}
