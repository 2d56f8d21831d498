package twitterapi

// Operation names used for metrics and error messages.
const (
	opVerifyCredentials = "account/verify_credentials"
	opFriendIDs         = "friends/ids"
	opFollowerIDs       = "followers/ids"
	opUsersLookup       = "users/lookup"
)

const (
	// maxIDsPerPage is the largest count friends/ids and followers/ids accept.
	maxIDsPerPage = 5000

	// firstCursor starts a cursored listing; a next_cursor of lastCursor ends it.
	firstCursor int64 = -1
	lastCursor  int64 = 0
)
