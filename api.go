package unfollow

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned by an API when the remote service rejects the credentials.
var ErrUnauthorized = errors.New("unauthorized")

// API is the remote collaborator used by every network step of a run.
//
// FollowingIDs and FollowerIDs return the complete listing or fail; implementations
// drain all pages themselves. LookupUsers accepts at most MaxLookupBatch ids and omits
// ids the service cannot resolve.
type API interface {
	VerifySelf(ctx context.Context) (*Profile, error)
	FollowingIDs(ctx context.Context) ([]int64, error)
	FollowerIDs(ctx context.Context) ([]int64, error)
	LookupUsers(ctx context.Context, ids []int64) ([]*Profile, error)
}

// Connector builds an API bound to one set of credentials.
type Connector func(Credentials) (API, error)
