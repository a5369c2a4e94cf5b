package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/registry"
	"github.com/dmitrijs2005/cameportal/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

func newSQLiteDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()
	db, err := repomanager.Open(ctx, dbx.SQLite, filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLRepositoryManager(dbx.SQLite)
	require.NoError(t, m.RunMigrations(ctx, db))
	return db, m
}

// fakeClock is a settable clock safe for concurrent use.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func newUserServiceSQLite(t *testing.T, clock *fakeClock) (*UserService, *sql.DB) {
	t.Helper()
	db, m := newSQLiteDB(t)
	s := NewUserService(db, m, logging.Nop{}, metrics.New())
	if clock != nil {
		s.SetClock(clock.Now)
	}
	return s, db
}

type fakeRoster struct {
	mu    sync.Mutex
	feed  string
	err   error
	loads int
}

func (f *fakeRoster) Load(context.Context) (*registry.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return registry.Parse(nil), f.err
	}
	return registry.Parse([]byte(f.feed)), nil
}

func (f *fakeRoster) SetFeed(feed string) {
	f.mu.Lock()
	f.feed = feed
	f.mu.Unlock()
}
