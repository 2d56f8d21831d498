package unfollow

import (
	"context"
	"slices"
	"strconv"
)

// fakeAPI is an in-memory API. failBatch is the 1-based lookup call that fails.
type fakeAPI struct {
	self      *Profile
	verifyErr error

	following, followers       []int64
	followingErr, followersErr error

	// onFollowers runs after the follower listing succeeds.
	onFollowers func()

	users     map[int64]*Profile
	failBatch int
	lookupErr error

	verifyCalls int
	listCalls   int
	batches     [][]int64
}

func (f *fakeAPI) VerifySelf(context.Context) (*Profile, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.self, nil
}

func (f *fakeAPI) FollowingIDs(context.Context) ([]int64, error) {
	f.listCalls++
	if f.followingErr != nil {
		return nil, f.followingErr
	}
	return f.following, nil
}

func (f *fakeAPI) FollowerIDs(context.Context) ([]int64, error) {
	f.listCalls++
	if f.followersErr != nil {
		return nil, f.followersErr
	}
	if f.onFollowers != nil {
		f.onFollowers()
	}
	return f.followers, nil
}

func (f *fakeAPI) LookupUsers(_ context.Context, ids []int64) ([]*Profile, error) {
	f.batches = append(f.batches, slices.Clone(ids))
	if f.failBatch == len(f.batches) {
		return nil, f.lookupErr
	}
	var out []*Profile
	for _, id := range ids {
		if p, ok := f.users[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAPI) connector() Connector {
	return func(Credentials) (API, error) { return f, nil }
}

// usersFor fabricates a resolvable profile for every id.
func usersFor(ids ...int64) map[int64]*Profile {
	m := make(map[int64]*Profile, len(ids))
	for _, id := range ids {
		m[id] = &Profile{ID: id, Handle: handleFor(id), DisplayName: "User " + handleFor(id), Followers: int(id)}
	}
	return m
}

func handleFor(id int64) string {
	return "user" + strconv.FormatInt(id, 10)
}

func idRange(from, to int64) []int64 {
	ids := make([]int64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func testCredentials() Credentials {
	return Credentials{APIKey: "key", APISecret: "secret", AccessToken: "token", AccessSecret: "tsecret"}
}
