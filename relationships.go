package unfollow

import (
	"context"
	"log/slog"
)

// Relationships holds both sides of the caller's follow graph.
type Relationships struct {
	Following IDSet
	Followers IDSet
}

// NonFollowers returns the ids in Following that are missing from Followers.
func (r Relationships) NonFollowers() IDSet {
	return NonFollowerIDs(r.Following, r.Followers)
}

// FetchRelationships lists every id the account follows and every id following it.
// Either listing failing yields a *FetchError and no partial result.
func FetchRelationships(ctx context.Context, s *Session) (Relationships, error) {
	following, err := s.API.FollowingIDs(ctx)
	if err != nil {
		return Relationships{}, &FetchError{Op: "following", Err: err}
	}
	followers, err := s.API.FollowerIDs(ctx)
	if err != nil {
		return Relationships{}, &FetchError{Op: "followers", Err: err}
	}

	r := Relationships{
		Following: NewIDSet(following...),
		Followers: NewIDSet(followers...),
	}
	slog.Debug("relationships fetched",
		slog.Int("following", r.Following.Len()),
		slog.Int("followers", r.Followers.Len()))
	return r, nil
}
