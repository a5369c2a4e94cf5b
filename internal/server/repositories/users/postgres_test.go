package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newPostgresRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLRepository(db, dbx.Postgres), mock, db
}

var userColumns = []string{"username", "password_hash", "salt", "created_at", "last_login",
	"founding_date", "email", "phone", "facebook", "twitter", "instagram", "linkedin"}

func TestPostgres_Create_UsesNumberedPlaceholders(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(.*\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,.*\$12\)$`
	mock.ExpectExec(q).
		WithArgs("acme", "h", "s", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "", "", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.User{UserName: "acme", PasswordHash: "h", Salt: "s", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostgres_Create_UniqueViolation(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &models.User{UserName: "acme", CreatedAt: time.Now()})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestPostgres_Create_DBError(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+users`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.User{UserName: "acme", CreatedAt: time.Now()})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("plain db errors must not look like duplicates")
	}
}

func TestPostgres_LockByUsername_ForUpdate(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(userColumns).
		AddRow("acme", "h", "s", created, nil, nil, "a@b.c", "", "", "", "", "")
	mock.ExpectQuery(`(?s)^SELECT\s+username,.*FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+FOR\s+UPDATE$`).
		WithArgs("acme").
		WillReturnRows(rows)

	got, err := repo.LockByUsername(context.Background(), "acme")
	if err != nil {
		t.Fatalf("LockByUsername error: %v", err)
	}
	if got.UserName != "acme" || got.Contact.Email != "a@b.c" || got.LastLogin != nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPostgres_GetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+username,.*WHERE\s+username\s*=\s*\$1$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPostgres_UpdatePassword_RowsAffected(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$1,\s*salt\s*=\s*\$2\s+WHERE\s+username\s*=\s*\$3$`
	mock.ExpectExec(q).WithArgs("h", "s", "acme").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("h", "s", "ghost").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WithArgs("h", "s", "dup").WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.UpdatePassword(context.Background(), "acme", "h", "s"); err != nil {
		t.Fatalf("UpdatePassword error: %v", err)
	}
	if err := repo.UpdatePassword(context.Background(), "ghost", "h", "s"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if err := repo.UpdatePassword(context.Background(), "dup", "h", "s"); err == nil {
		t.Fatalf("expected error for 2 rows affected")
	}
}

func TestPostgres_Delete(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1$`).
		WithArgs("acme").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "acme"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestPostgres_List_ScanError(t *testing.T) {
	repo, mock, db := newPostgresRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"username"}).AddRow("acme")
	mock.ExpectQuery(`(?s)^SELECT\s+username,.*ORDER\s+BY\s+created_at\s+DESC`).WillReturnRows(rows)

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected scan error")
	}
}
