package unfollow

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

// SnapshotWriter persists run results as JSON files, replacing any previous snapshot.
type SnapshotWriter struct {
	Dir string

	// Now supplies the last_updated timestamp. Default: time.Now.
	Now func() time.Time
}

type nonFollowersSnapshot struct {
	NonFollowers []NonFollower `json:"non_followers"`
	LastUpdated  string        `json:"last_updated"`
}

type statsSnapshot struct {
	Stats       ProfileStats `json:"stats"`
	LastUpdated string       `json:"last_updated"`
}

// NewSnapshotWriter returns a writer targeting dir.
func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{Dir: dir, Now: time.Now}
}

// WriteNonFollowers replaces non_followers.json and returns its path.
func (w *SnapshotWriter) WriteNonFollowers(records []NonFollower) (string, error) {
	if records == nil {
		records = []NonFollower{}
	}
	return w.write(NonFollowersFile, nonFollowersSnapshot{
		NonFollowers: records,
		LastUpdated:  w.timestamp(),
	})
}

// WriteStats replaces twitter_stats.json and returns its path.
func (w *SnapshotWriter) WriteStats(stats ProfileStats) (string, error) {
	return w.write(StatsFile, statsSnapshot{
		Stats:       stats,
		LastUpdated: w.timestamp(),
	})
}

func (w *SnapshotWriter) timestamp() string {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	return now().Format(time.RFC3339Nano)
}

// write marshals v and swaps it into place with a temp file and rename.
func (w *SnapshotWriter) write(name string, v any) (string, error) {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return path, &PersistenceError{Path: path, Err: fmt.Errorf("marshal: %w", err)}
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, &PersistenceError{Path: path, Err: fmt.Errorf("create dir: %w", err)}
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return path, &PersistenceError{Path: path, Err: err}
	}
	slog.Debug("snapshot saved", slog.String("path", path), slog.Int("bytes", len(data)))
	return path, nil
}
