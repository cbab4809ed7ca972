// Package cache persists granule metadata lookups in SQLite so repeated
// enrichment runs avoid remote calls.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/opensarlab/osl-notebook-kit/domain/jobs"

	_ "modernc.org/sqlite"
)

// MetadataCache wraps a MetadataLookup with a SQLite-backed cache. Lookup
// errors are never cached.
type MetadataCache struct {
	db     *sql.DB
	next   jobs.MetadataLookup
	logger *slog.Logger

	mu     sync.Mutex
	hits   uint64
	misses uint64
}

// Open opens (or creates) the cache database at path in front of next.
func Open(path string, next jobs.MetadataLookup, logger *slog.Logger) (*MetadataCache, error) {
	if next == nil {
		return nil, errors.New("cache: nil upstream lookup")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cache: ensure dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: schema: %w", err)
	}
	return &MetadataCache{db: db, next: next, logger: logger}, nil
}

func initSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS granule_metadata (
    granule TEXT PRIMARY KEY,
    path INTEGER NOT NULL,
    orbit_direction TEXT NOT NULL
);`
	_, err := db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (c *MetadataCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	if c.logger != nil {
		hits, misses := c.Stats()
		c.logger.Info("metadata cache closed",
			"hits", humanize.Comma(int64(hits)),
			"misses", humanize.Comma(int64(misses)))
	}
	return c.db.Close()
}

// Stats returns the hit and miss counts since Open.
func (c *MetadataCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// GranuleMetadata returns cached metadata or asks the upstream lookup and
// stores its successful answer.
func (c *MetadataCache) GranuleMetadata(ctx context.Context, granule string) (jobs.GranuleMetadata, error) {
	var (
		md  jobs.GranuleMetadata
		dir string
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT path, orbit_direction FROM granule_metadata WHERE granule = ?`, granule).
		Scan(&md.Path, &dir)
	switch {
	case err == nil:
		md.OrbitDirection = jobs.OrbitDirection(dir)
		c.count(true)
		return md, nil
	case !errors.Is(err, sql.ErrNoRows):
		return jobs.GranuleMetadata{}, fmt.Errorf("cache: query %s: %w", granule, err)
	}

	c.count(false)
	md, err = c.next.GranuleMetadata(ctx, granule)
	if err != nil {
		return jobs.GranuleMetadata{}, err
	}
	if _, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO granule_metadata (granule, path, orbit_direction) VALUES (?, ?, ?)`,
		granule, md.Path, string(md.OrbitDirection)); err != nil && c.logger != nil {
		c.logger.Warn("metadata cache write failed", "granule", granule, "error", err)
	}
	return md, nil
}

func (c *MetadataCache) count(hit bool) {
	c.mu.Lock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
}

var _ jobs.MetadataLookup = (*MetadataCache)(nil)
