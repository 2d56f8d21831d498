package twitterapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dghubble/go-twitter/twitter"

	"github.com/anatolykoptev/go-unfollow"
)

// errorClass categorizes Twitter API error responses for targeted handling.
type errorClass int

const (
	errNone         errorClass = iota
	errUnauthorized            // 32, 89, 215 or HTTP 401: bad or expired credentials
	errNoMatches               // 17: users/lookup matched none of the ids
	errUserGone                // 50, 63: user not found or suspended
	errRateLimited             // 88 or HTTP 429
	errInternal                // 131: Twitter internal error
)

// classifyError inspects an API error and response for known Twitter error codes.
func classifyError(err error, resp *http.Response) errorClass {
	var apiErr twitter.APIError
	if errors.As(err, &apiErr) {
		for _, e := range apiErr.Errors {
			switch e.Code {
			case 32, 89, 215:
				return errUnauthorized
			case 17:
				return errNoMatches
			case 50, 63:
				return errUserGone
			case 88:
				return errRateLimited
			case 131:
				return errInternal
			}
		}
	}
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errUnauthorized
		case http.StatusTooManyRequests:
			return errRateLimited
		}
	}
	return errNone
}

// wrapError annotates err with the operation and maps credential rejections
// to unfollow.ErrUnauthorized. The api error stays in the chain.
func wrapError(op string, err error, resp *http.Response) error {
	switch classifyError(err, resp) {
	case errUnauthorized:
		return fmt.Errorf("%s: %w (%v)", op, unfollow.ErrUnauthorized, err)
	case errRateLimited:
		var reset time.Time
		if resp != nil {
			reset = parseRateLimitReset(resp.Header.Get("x-rate-limit-reset"))
		} else {
			reset = parseRateLimitReset("")
		}
		return fmt.Errorf("%s: rate limited until %s: %w", op, reset.Format(time.RFC3339), err)
	case errUserGone:
		return fmt.Errorf("%s: account not found or suspended: %w", op, err)
	case errInternal:
		return fmt.Errorf("%s: twitter internal error, try again later: %w", op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// parseRateLimitReset parses the X-Rate-Limit-Reset unix timestamp header.
// Falls back to 15 minutes from now if missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}
