package twitterapi

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dghubble/go-twitter/twitter"

	"github.com/anatolykoptev/go-unfollow"
)

// createdAtLayout is the v1.1 created_at format.
const createdAtLayout = "Mon Jan 02 15:04:05 +0000 2006"

// parseUser converts a v1.1 user object into a Profile.
func parseUser(u *twitter.User) (*unfollow.Profile, error) {
	if u == nil {
		return nil, fmt.Errorf("nil user")
	}
	if u.ID == 0 {
		return nil, fmt.Errorf("empty user id (screen_name=%q)", u.ScreenName)
	}
	var createdAt time.Time
	if u.CreatedAt != "" {
		t, err := time.Parse(createdAtLayout, u.CreatedAt)
		if err == nil {
			createdAt = t
		}
	}
	return &unfollow.Profile{
		ID:          u.ID,
		Handle:      u.ScreenName,
		DisplayName: u.Name,
		Bio:         strings.TrimSpace(u.Description),
		Location:    strings.TrimSpace(u.Location),
		Followers:   u.FollowersCount,
		Following:   u.FriendsCount,
		TweetCount:  u.StatusesCount,
		CreatedAt:   createdAt,
		IsVerified:  u.Verified,
	}, nil
}

// parseUsers converts a lookup response, skipping entries that fail to parse.
func parseUsers(users []twitter.User) []*unfollow.Profile {
	profiles := make([]*unfollow.Profile, 0, len(users))
	for i := range users {
		p, err := parseUser(&users[i])
		if err != nil {
			slog.Debug("skip user parse error", slog.Any("error", err))
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles
}
