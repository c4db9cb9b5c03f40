// Package transcriptcache persists fetched transcripts in a small SQLite
// database so repeat grabs of the same video skip the network entirely.
package transcriptcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/providers"
)

// Entry is one cached transcript row.
type Entry struct {
	VideoID    string
	Language   string
	Source     string
	Transcript string
	CachedAt   time.Time
}

// Store manages transcript persistence backed by SQLite. A lock file guards
// the database directory against concurrent transcriptgrab processes.
type Store struct {
	db     *sql.DB
	lock   *flock.Flock
	ttl    time.Duration
	logger *slog.Logger
}

// Open initializes or connects to the cache database under dir. A ttlDays of
// zero or less disables expiry.
func Open(dir string, ttlDays int, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "cache.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, errors.New("cache is locked by another process")
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "transcripts.db"))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		lock:   lock,
		ttl:    time.Duration(ttlDays) * 24 * time.Hour,
		logger: logging.NewComponentLogger(logger, "transcriptcache"),
	}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS transcripts (
        video_id   TEXT NOT NULL,
        language   TEXT NOT NULL,
        source     TEXT NOT NULL,
        transcript TEXT NOT NULL,
        cached_at  TEXT NOT NULL,
        PRIMARY KEY (video_id, language)
    )`)
	if err != nil {
		return fmt.Errorf("create transcripts table: %w", err)
	}
	return nil
}

// Close releases the database connection and the directory lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the cached transcript for video and language if present and
// not expired. Expired rows are removed on the way out.
func (s *Store) Lookup(ctx context.Context, videoID, lang string) (providers.Result, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT source, transcript, cached_at FROM transcripts WHERE video_id = ? AND language = ?`,
		videoID, lang)

	var source, transcript, cachedAt string
	if err := row.Scan(&source, &transcript, &cachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return providers.Result{}, false, nil
		}
		return providers.Result{}, false, fmt.Errorf("query transcript: %w", err)
	}

	when, err := time.Parse(time.RFC3339Nano, cachedAt)
	if err != nil {
		return providers.Result{}, false, fmt.Errorf("parse cached_at: %w", err)
	}
	if s.expired(when) {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM transcripts WHERE video_id = ? AND language = ?`, videoID, lang); err != nil {
			s.logger.Warn("failed to evict expired entry", logging.Error(err))
		}
		return providers.Result{}, false, nil
	}
	return providers.Result{Transcript: transcript, Source: source}, true, nil
}

// Store inserts or replaces the transcript for video and language.
func (s *Store) Store(ctx context.Context, videoID, lang string, result providers.Result) error {
	if videoID == "" || lang == "" {
		return errors.New("video ID and language required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO transcripts (video_id, language, source, transcript, cached_at)
         VALUES (?, ?, ?, ?, ?)`,
		videoID, lang, result.Source, result.Transcript,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store transcript: %w", err)
	}
	s.logger.Debug("cached transcript",
		logging.String("video_id", videoID),
		logging.String("language", lang),
		logging.String("source", result.Source))
	return nil
}

// List returns all cached entries, newest first. Expired entries are
// included; they age out on lookup or Clear.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT video_id, language, source, transcript, cached_at
         FROM transcripts ORDER BY cached_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var cachedAt string
		if err := rows.Scan(&entry.VideoID, &entry.Language, &entry.Source, &entry.Transcript, &cachedAt); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		if entry.CachedAt, err = time.Parse(time.RFC3339Nano, cachedAt); err != nil {
			return nil, fmt.Errorf("parse cached_at: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return entries, nil
}

// Clear removes every cached transcript.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transcripts`)
	if err != nil {
		return 0, fmt.Errorf("clear transcripts: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	s.logger.Debug("cleared transcript cache", logging.Int64("removed", removed))
	return removed, nil
}

func (s *Store) expired(cachedAt time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	return time.Since(cachedAt) > s.ttl
}
