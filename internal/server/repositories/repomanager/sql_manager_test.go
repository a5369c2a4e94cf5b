package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/dmitrijs2005/cameportal/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewSQLRepositoryManager_Dialect(t *testing.T) {
	m := NewSQLRepositoryManager(dbx.Postgres)
	assert.Equal(t, dbx.Postgres, m.Dialect())
}

func TestUsers_ReturnsSQLRepository(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewSQLRepositoryManager(dbx.SQLite)
	var r users.Repository = m.Users(db)
	require.NotNil(t, r)
	_, ok := r.(*users.SQLRepository)
	assert.True(t, ok)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := NewSQLRepositoryManager(dbx.Postgres)
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewSQLRepositoryManager(dbx.Postgres)
	err := m.RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "portal.db")

	db, err := Open(ctx, dbx.SQLite, dsn)
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLRepositoryManager(dbx.SQLite)
	require.NoError(t, m.RunMigrations(ctx, db))
	// idempotent
	require.NoError(t, m.RunMigrations(ctx, db))

	repo := m.Users(db)
	require.NoError(t, repo.Create(ctx, &models.User{UserName: "acme", PasswordHash: "h", Salt: "s", CreatedAt: time.Now()}))
	got, err := repo.GetByUsername(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", got.UserName)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), dbx.Dialect{DriverName: "nope"}, "x")
	assert.Error(t, err)
}
