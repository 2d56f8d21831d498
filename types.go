package unfollow

import "time"

// Profile represents a Twitter/X account profile as returned by the API collaborator.
type Profile struct {
	ID          int64
	Handle      string
	DisplayName string
	Bio         string
	Location    string
	Followers   int
	Following   int
	TweetCount  int
	CreatedAt   time.Time
	IsVerified  bool
}

// NonFollower is an account the caller follows that does not follow back.
type NonFollower struct {
	ScreenName     string `json:"screen_name"`
	Name           string `json:"name"`
	FollowersCount int    `json:"followers_count"`
	Verified       bool   `json:"verified"`
}

// ProfileStats is the caller's own account summary persisted to the stats snapshot.
type ProfileStats struct {
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	FollowersCount int     `json:"followers_count"`
	FollowingCount int     `json:"following_count"`
	TweetsCount    int     `json:"tweets_count"`
	AccountCreated string  `json:"account_created"`
	Verified       bool    `json:"verified"`
	Location       *string `json:"location"`
	Description    *string `json:"description"`
}

// NonFollowerFromProfile builds the record written for one resolved account.
func NonFollowerFromProfile(p *Profile) NonFollower {
	return NonFollower{
		ScreenName:     p.Handle,
		Name:           p.DisplayName,
		FollowersCount: p.Followers,
		Verified:       p.IsVerified,
	}
}

// StatsFromProfile builds the stats record from the verified self profile.
// Empty location and bio are reported as null.
func StatsFromProfile(p *Profile) ProfileStats {
	var created string
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Format(time.RFC3339)
	}
	return ProfileStats{
		Username:       p.Handle,
		Name:           p.DisplayName,
		FollowersCount: p.Followers,
		FollowingCount: p.Following,
		TweetsCount:    p.TweetCount,
		AccountCreated: created,
		Verified:       p.IsVerified,
		Location:       optional(p.Location),
		Description:    optional(p.Bio),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
