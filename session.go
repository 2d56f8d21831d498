package unfollow

import (
	"context"
	"errors"
	"log/slog"
)

// Session is an authenticated handle bound to one account for the life of the process.
type Session struct {
	API API

	// Self is the profile returned by the verification call; reused for stats.
	Self *Profile
}

// Authenticate validates creds, connects, and confirms them with a self lookup.
// Every failure is an *AuthenticationError; missing credentials fail before connect
// is called.
func Authenticate(ctx context.Context, creds Credentials, connect Connector) (*Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	api, err := connect(creds)
	if err != nil {
		return nil, &AuthenticationError{Reason: err.Error(), Err: err}
	}

	me, err := api.VerifySelf(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, &AuthenticationError{Reason: "unauthorized", Err: err}
		}
		return nil, &AuthenticationError{Reason: err.Error(), Err: err}
	}
	if me == nil {
		return nil, &AuthenticationError{Reason: "verify credentials returned no profile"}
	}

	slog.Info("authenticated",
		slog.String("user", me.Handle),
		slog.Int("followers", me.Followers),
		slog.Int("following", me.Following))
	return &Session{API: api, Self: me}, nil
}

// Stats returns the stats record for the session's own account.
func (s *Session) Stats() (ProfileStats, error) {
	if s == nil || s.Self == nil {
		return ProfileStats{}, errors.New("session has no verified profile")
	}
	return StatsFromProfile(s.Self), nil
}
