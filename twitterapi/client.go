// Package twitterapi implements unfollow.API on top of the Twitter v1.1 REST
// API with OAuth1 user-context signing.
package twitterapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"

	"github.com/anatolykoptev/go-unfollow"
)

// Client is an OAuth1-signed Twitter v1.1 client bound to one account.
type Client struct {
	tw  *twitter.Client
	cfg Config
}

var _ unfollow.API = (*Client)(nil)

// NewClient creates a client signing every request with creds.
// No network call is made.
func NewClient(creds unfollow.Credentials, cfg Config) *Client {
	cfg.defaults()

	ctx := oauth1.NoContext
	if cfg.Transport != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, &http.Client{Transport: cfg.Transport})
	}
	httpClient := oauth1.NewConfig(creds.APIKey, creds.APISecret).
		Client(ctx, oauth1.NewToken(creds.AccessToken, creds.AccessSecret))
	httpClient.Timeout = cfg.Timeout

	return &Client{
		tw:  twitter.NewClient(httpClient),
		cfg: cfg,
	}
}

// Connector returns an unfollow.Connector building clients with cfg.
func Connector(cfg Config) unfollow.Connector {
	return func(creds unfollow.Credentials) (unfollow.API, error) {
		return NewClient(creds, cfg), nil
	}
}

// VerifySelf fetches the authenticated account's own profile.
func (c *Client) VerifySelf(ctx context.Context) (*unfollow.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	skipStatus := true
	user, resp, err := c.tw.Accounts.VerifyCredentials(&twitter.AccountVerifyParams{SkipStatus: &skipStatus})
	c.recordAPICall(opVerifyCredentials, err, resp)
	if err != nil {
		return nil, wrapError(opVerifyCredentials, err, resp)
	}
	p, err := parseUser(user)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opVerifyCredentials, err)
	}
	return p, nil
}

// FollowingIDs lists every account id the authenticated user follows.
func (c *Client) FollowingIDs(ctx context.Context) ([]int64, error) {
	return c.fetchIDs(ctx, opFriendIDs, func(cursor int64) ([]int64, int64, *http.Response, error) {
		page, resp, err := c.tw.Friends.IDs(&twitter.FriendIDParams{Cursor: cursor, Count: c.cfg.PageSize})
		if err != nil || page == nil {
			return nil, lastCursor, resp, err
		}
		return page.IDs, page.NextCursor, resp, nil
	})
}

// FollowerIDs lists every account id following the authenticated user.
func (c *Client) FollowerIDs(ctx context.Context) ([]int64, error) {
	return c.fetchIDs(ctx, opFollowerIDs, func(cursor int64) ([]int64, int64, *http.Response, error) {
		page, resp, err := c.tw.Followers.IDs(&twitter.FollowerIDParams{Cursor: cursor, Count: c.cfg.PageSize})
		if err != nil || page == nil {
			return nil, lastCursor, resp, err
		}
		return page.IDs, page.NextCursor, resp, nil
	})
}

type idPageFunc func(cursor int64) (ids []int64, next int64, resp *http.Response, err error)

// fetchIDs drains a cursored id listing. Any failed page fails the whole listing.
func (c *Client) fetchIDs(ctx context.Context, op string, page idPageFunc) ([]int64, error) {
	var ids []int64
	cursor := firstCursor

	for pages := 1; ; pages++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch, next, resp, err := page(cursor)
		c.recordAPICall(op, err, resp)
		if err != nil {
			return nil, wrapError(op, err, resp)
		}
		ids = append(ids, batch...)

		if next == lastCursor {
			slog.Debug("listing drained", slog.String("op", op), slog.Int("pages", pages), slog.Int("ids", len(ids)))
			break
		}
		if next == cursor {
			return nil, fmt.Errorf("%s: cursor %d did not advance", op, cursor)
		}
		cursor = next
	}
	return ids, nil
}

// LookupUsers resolves up to 100 ids in one call. Ids the API cannot resolve are
// omitted; a batch matching none of them yields an empty result.
func (c *Client) LookupUsers(ctx context.Context, ids []int64) ([]*unfollow.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > unfollow.DefaultBatchSize {
		return nil, fmt.Errorf("%s: %d ids exceeds the limit of %d", opUsersLookup, len(ids), unfollow.DefaultBatchSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	includeEntities := false
	users, resp, err := c.tw.Users.Lookup(&twitter.UserLookupParams{UserID: ids, IncludeEntities: &includeEntities})
	if err != nil && classifyError(err, resp) == errNoMatches {
		c.recordAPICall(opUsersLookup, nil, resp)
		slog.Debug("lookup matched no users", slog.Int("ids", len(ids)))
		return nil, nil
	}
	c.recordAPICall(opUsersLookup, err, resp)
	if err != nil {
		return nil, wrapError(opUsersLookup, err, resp)
	}
	return parseUsers(users), nil
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(endpoint string, err error, resp *http.Response) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(endpoint, err == nil, err != nil && classifyError(err, resp) == errRateLimited)
	}
}
