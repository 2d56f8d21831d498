package unfollow

import "fmt"

// AuthenticationError reports missing or rejected credentials, or a failed self lookup.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// FetchError reports a failure while listing following or follower ids.
type FetchError struct {
	Op  string // "following" or "followers"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ResolveError reports a failed lookup batch. Records resolved by earlier
// batches are still returned alongside it.
type ResolveError struct {
	Batch    int // zero-based index of the failing batch
	Batches  int
	Resolved int
	Err      error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve batch %d/%d (kept %d records): %v", e.Batch+1, e.Batches, e.Resolved, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// PersistenceError reports a snapshot that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
