package unfollow

import (
	"context"
	"log/slog"
)

// Batches splits ids into consecutive chunks of at most size ids.
// A size outside 1..DefaultBatchSize is treated as DefaultBatchSize.
func Batches(ids []int64, size int) [][]int64 {
	if size <= 0 || size > DefaultBatchSize {
		size = DefaultBatchSize
	}
	batches := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}

// ResolveNonFollowers looks up ids in batches and converts each resolved profile.
//
// Ids the service cannot resolve are dropped. The first failing batch stops the
// loop: records from earlier batches are returned together with a *ResolveError.
// Cancellation of ctx is returned as ctx.Err() with no records.
func ResolveNonFollowers(ctx context.Context, api API, ids IDSet, batchSize int) ([]NonFollower, error) {
	batches := Batches(ids.Sorted(), batchSize)
	records := make([]NonFollower, 0, ids.Len())

	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		users, err := api.LookupUsers(ctx, batch)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			slog.Warn("lookup batch failed",
				slog.Int("batch", i+1),
				slog.Int("batches", len(batches)),
				slog.Any("error", err))
			return records, &ResolveError{Batch: i, Batches: len(batches), Resolved: len(records), Err: err}
		}
		for _, u := range users {
			if u == nil {
				continue
			}
			records = append(records, NonFollowerFromProfile(u))
		}
		if dropped := len(batch) - len(users); dropped > 0 {
			slog.Debug("unresolvable ids dropped", slog.Int("batch", i+1), slog.Int("dropped", dropped))
		}
	}
	return records, nil
}
