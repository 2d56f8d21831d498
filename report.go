package unfollow

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
)

var separator = strings.Repeat("-", 30)

// Reporter prints the human-readable progress and summary of a run.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// SortByFollowers returns a copy of records ordered by follower count, highest
// first. Records with equal counts keep their input order.
func SortByFollowers(records []NonFollower) []NonFollower {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b NonFollower) int {
		return cmp.Compare(b.FollowersCount, a.FollowersCount)
	})
	return sorted
}

// Authenticated confirms the verified account.
func (r *Reporter) Authenticated(p *Profile) {
	r.printf("Authenticated as @%s\n", p.Handle)
	r.printf("Followers: %d\n", p.Followers)
	r.printf("Following: %d\n", p.Following)
}

// Relationships prints the sizes of both listings.
func (r *Reporter) Relationships(rel Relationships) {
	r.printf("\nYou follow %d accounts\n", rel.Following.Len())
	r.printf("%d accounts follow you\n", rel.Followers.Len())
}

// NonFollowers prints records sorted by follower count.
func (r *Reporter) NonFollowers(records []NonFollower) {
	r.printf("\nResults:\n%s\n", separator)
	r.printf("%d accounts do not follow you back:\n", len(records))
	for _, nf := range SortByFollowers(records) {
		marker := " "
		if nf.Verified {
			marker = "✓"
		}
		r.printf("@%s %s\n", nf.ScreenName, marker)
		r.printf("   Name: %s\n", nf.Name)
		r.printf("   Followers: %d\n", nf.FollowersCount)
		r.printf("%s\n", separator)
	}
}

// Stats prints the caller's profile statistics.
func (r *Reporter) Stats(s ProfileStats) {
	r.printf("\nProfile stats:\n%s\n", separator)
	r.printf("Name: %s\n", s.Name)
	r.printf("Username: @%s\n", s.Username)
	r.printf("Followers: %d\n", s.FollowersCount)
	r.printf("Following: %d\n", s.FollowingCount)
	r.printf("Tweets: %d\n", s.TweetsCount)
	r.printf("Location: %s\n", orNotSet(s.Location))
	r.printf("Bio: %s\n", orNotSet(s.Description))
}

// Saved confirms a snapshot file was written.
func (r *Reporter) Saved(path string) {
	r.printf("\nSaved %s\n", path)
}

// Failure prints err as a one-line message.
func (r *Reporter) Failure(err error) {
	r.printf("Error: %v\n", err)
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func orNotSet(s *string) string {
	if s == nil || *s == "" {
		return "not set"
	}
	return *s
}
