package unfollow

import (
	"context"
	"errors"
	"log/slog"
)

// Runner composes one full run: authenticate, snapshot stats, compute and
// snapshot non-followers, then print the summary.
type Runner struct {
	Connect   Connector
	Writer    *SnapshotWriter
	Reporter  *Reporter
	BatchSize int
}

// Result collects what a run produced, including partial output on failure.
type Result struct {
	Self          *Profile
	Stats         ProfileStats
	Relationships Relationships
	NonFollowers  []NonFollower

	// Partial is set when a lookup batch failed and NonFollowers is incomplete.
	Partial *ResolveError

	StatsPath        string
	NonFollowersPath string
}

// Run executes the pipeline for creds.
//
// Authentication failures abort before anything is written. Stats are saved and
// printed whether or not the non-follower phase succeeds. A fetch failure or a
// canceled ctx writes no non-follower snapshot. A failed lookup batch is not
// fatal: the partial list is saved and reported and recorded in Result.Partial.
func (r *Runner) Run(ctx context.Context, creds Credentials) (*Result, error) {
	sess, err := Authenticate(ctx, creds, r.Connect)
	if err != nil {
		return nil, err
	}
	r.Reporter.Authenticated(sess.Self)

	res := &Result{Self: sess.Self}
	stats, statsErr := sess.Stats()
	haveStats := statsErr == nil
	if haveStats {
		res.Stats = stats
		statsErr = r.saveStats(stats, res)
	}
	nfErr := r.nonFollowers(ctx, sess, res)

	if haveStats {
		r.Reporter.Stats(res.Stats)
	}
	if nfErr != nil {
		return res, nfErr
	}
	return res, statsErr
}

func (r *Runner) saveStats(stats ProfileStats, res *Result) error {
	path, err := r.Writer.WriteStats(stats)
	if err != nil {
		slog.Error("stats snapshot failed", slog.Any("error", err))
		return err
	}
	res.StatsPath = path
	r.Reporter.Saved(path)
	return nil
}

func (r *Runner) nonFollowers(ctx context.Context, sess *Session, res *Result) error {
	rel, err := FetchRelationships(ctx, sess)
	if err != nil {
		slog.Error("relationship fetch failed", slog.Any("error", err))
		return err
	}
	res.Relationships = rel
	r.Reporter.Relationships(rel)

	ids := rel.NonFollowers()
	records, err := ResolveNonFollowers(ctx, sess.API, ids, r.BatchSize)
	if err != nil {
		var rerr *ResolveError
		if !errors.As(err, &rerr) {
			slog.Error("lookup aborted", slog.Any("error", err))
			return err
		}
		res.Partial = rerr
		slog.Warn("non-follower list is partial",
			slog.Int("resolved", len(records)),
			slog.Int("expected_at_most", ids.Len()),
			slog.Any("error", rerr))
	}
	res.NonFollowers = records

	path, err := r.Writer.WriteNonFollowers(records)
	if err != nil {
		return err
	}
	res.NonFollowersPath = path
	r.Reporter.Saved(path)
	r.Reporter.NonFollowers(records)
	return nil
}
