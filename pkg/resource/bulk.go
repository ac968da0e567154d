package resource

import (
	"context"
	"sync"
)

// DeleteResult is the settled outcome of one delete inside a batch.
type DeleteResult struct {
	ID      int64
	Message string
	Err     error
}

// Succeeded reports whether this item's delete completed.
func (r DeleteResult) Succeeded() bool {
	return r.Err == nil
}

// BulkDelete issues one delete per id concurrently and waits for all
// of them to settle. One failure never aborts the batch: the result
// always holds exactly len(ids) outcomes, in input order, so callers
// can report partial success counts.
func (m *Module[T, S]) BulkDelete(ctx context.Context, ids []int64) []DeleteResult {
	results := make([]DeleteResult, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			message, err := m.Delete(ctx, id)
			results[i] = DeleteResult{ID: id, Message: message, Err: err}
		}(i, id)
	}
	wg.Wait()

	return results
}

// CountSettled tallies a settled batch into success and failure
// counts. succeeded+failed always equals the batch size.
func CountSettled(results []DeleteResult) (succeeded, failed int) {
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
