package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
	"golang.org/x/sync/singleflight"
)

// OpenFunc opens a database handle for the given DSN.
type OpenFunc func(dsn string) (*sql.DB, error)

// Cache lazily opens and memoizes a single database handle. Concurrent first
// callers share one in-flight connection attempt; once a connect succeeds the
// handle is reused for the life of the process. A failed attempt is not
// cached, so the next caller retries.
type Cache struct {
	open  OpenFunc
	group singleflight.Group

	mu sync.RWMutex
	db *sql.DB
}

// NewCache returns a Cache using open to establish connections. A nil open
// uses the postgres driver via sql.Open.
func NewCache(open OpenFunc) *Cache {
	if open == nil {
		open = func(dsn string) (*sql.DB, error) {
			return sql.Open("postgres", dsn)
		}
	}
	return &Cache{open: open}
}

// Get returns the cached handle, establishing and verifying it on first use.
func (c *Cache) Get(ctx context.Context, dsn string) (*sql.DB, error) {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := c.group.Do("connect", func() (interface{}, error) {
		c.mu.RLock()
		cached := c.db
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		db, err := c.open(dsn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}

		c.mu.Lock()
		c.db = db
		c.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sql.DB), nil
}

var defaultCache = NewCache(nil)

// Get returns the process-wide cached connection, opening it on first use.
func Get(ctx context.Context, dsn string) (*sql.DB, error) {
	return defaultCache.Get(ctx, dsn)
}
