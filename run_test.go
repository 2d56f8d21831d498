package unfollow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(api *fakeAPI, dir string, out *bytes.Buffer) *Runner {
	return &Runner{
		Connect:   api.connector(),
		Writer:    NewSnapshotWriter(dir),
		Reporter:  NewReporter(out),
		BatchSize: DefaultBatchSize,
	}
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	api := &fakeAPI{
		self:      &Profile{ID: 1, Handle: "me", DisplayName: "Me", Followers: 2, Following: 4},
		following: []int64{10, 20, 30, 40},
		followers: []int64{20, 40, 50},
		users: map[int64]*Profile{
			10: {ID: 10, Handle: "ten", DisplayName: "Ten", Followers: 5},
			30: {ID: 30, Handle: "thirty", DisplayName: "Thirty", Followers: 500, IsVerified: true},
		},
	}

	res, err := newTestRunner(api, dir, &out).Run(context.Background(), testCredentials())
	require.NoError(t, err)

	assert.Nil(t, res.Partial)
	assert.Len(t, res.NonFollowers, 2)
	assert.Equal(t, []int64{10, 30}, res.Relationships.NonFollowers().Sorted())
	assert.Equal(t, 1, api.verifyCalls)
	assert.Equal(t, [][]int64{{10, 30}}, api.batches)

	var snap struct {
		NonFollowers []NonFollower `json:"non_followers"`
	}
	data, err := os.ReadFile(filepath.Join(dir, NonFollowersFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.NonFollowers, 2)
	assert.FileExists(t, filepath.Join(dir, StatsFile))

	report := out.String()
	assert.Contains(t, report, "Authenticated as @me")
	assert.Contains(t, report, "2 accounts do not follow you back:")
	assert.Contains(t, report, "Username: @me")
}

func TestRunner_FetchFailureWritesNoNonFollowers(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	boom := errors.New("HTTP 503")
	api := &fakeAPI{
		self:         &Profile{ID: 1, Handle: "me"},
		following:    []int64{1, 2},
		followersErr: boom,
	}

	res, err := newTestRunner(api, dir, &out).Run(context.Background(), testCredentials())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "followers", fetchErr.Op)
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, filepath.Join(dir, NonFollowersFile))
	assert.FileExists(t, filepath.Join(dir, StatsFile), "stats are independent of the non-follower phase")
	assert.Contains(t, out.String(), "Username: @me")
	assert.Empty(t, api.batches)
	require.NotNil(t, res)
	assert.Equal(t, "me", res.Stats.Username)
}

func TestRunner_PartialResolveIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	following := idRange(1, 150)
	api := &fakeAPI{
		self:      &Profile{ID: 1000, Handle: "me"},
		following: following,
		users:     usersFor(following...),
		failBatch: 2,
		lookupErr: errors.New("timeout"),
	}

	res, err := newTestRunner(api, dir, &out).Run(context.Background(), testCredentials())
	require.NoError(t, err)
	require.NotNil(t, res.Partial)
	assert.Len(t, res.NonFollowers, 100)

	var snap struct {
		NonFollowers []NonFollower `json:"non_followers"`
	}
	data, err := os.ReadFile(filepath.Join(dir, NonFollowersFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.NonFollowers, 100)
	assert.Contains(t, out.String(), "100 accounts do not follow you back:")
}

func TestRunner_AuthFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	api := &fakeAPI{verifyErr: ErrUnauthorized}

	res, err := newTestRunner(api, dir, &out).Run(context.Background(), testCredentials())

	assert.Nil(t, res)
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "unauthorized", authErr.Reason)
	assert.Equal(t, 0, api.listCalls)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunner_CanceledBeforeLookupKeepsPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	previous := []byte(`{"non_followers":[{"screen_name":"old"}]}` + "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, NonFollowersFile), previous, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	following := idRange(1, 10)
	api := &fakeAPI{
		self:        &Profile{ID: 1000, Handle: "me"},
		following:   following,
		users:       usersFor(following...),
		onFollowers: cancel,
	}

	res, err := newTestRunner(api, dir, &out).Run(ctx, testCredentials())

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Nil(t, res.Partial)
	assert.Empty(t, res.NonFollowers)
	assert.Empty(t, api.batches)

	data, err := os.ReadFile(filepath.Join(dir, NonFollowersFile))
	require.NoError(t, err)
	assert.Equal(t, previous, data)
	assert.NotContains(t, out.String(), "accounts do not follow you back")
}

func TestRunner_StatsPrintedWhenSnapshotFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	var out bytes.Buffer
	api := &fakeAPI{
		self:      &Profile{ID: 1, Handle: "me", DisplayName: "Me"},
		following: []int64{10},
		users:     usersFor(10),
	}

	res, err := newTestRunner(api, filepath.Join(blocker, "out"), &out).Run(context.Background(), testCredentials())

	var persErr *PersistenceError
	require.ErrorAs(t, err, &persErr)
	require.NotNil(t, res)
	assert.Empty(t, res.StatsPath)
	assert.Equal(t, "me", res.Stats.Username)
	assert.Contains(t, out.String(), "Username: @me")
}
