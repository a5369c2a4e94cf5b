// Package users implements the credential store on top of database/sql.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

const selectColumns = `SELECT username, password_hash, salt, created_at, last_login,
		founding_date, email, phone, facebook, twitter, instagram, linkedin
		FROM users`

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, password_hash, salt, created_at, last_login,
		founding_date, email, phone, facebook, twitter, instagram, linkedin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	c := user.Contact
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		user.UserName, user.PasswordHash, user.Salt, user.CreatedAt.UTC(), nullTime(user.LastLogin),
		nullTime(c.FoundingDate), c.Email, c.Phone, c.Facebook, c.Twitter, c.Instagram, c.LinkedIn)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.get(ctx, selectColumns+` WHERE username = ?`, username)
}

func (r *SQLRepository) LockByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.get(ctx, selectColumns+` WHERE username = ?`+r.dialect.ForUpdate(), username)
}

func (r *SQLRepository) get(ctx context.Context, query, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, r.dialect.Rebind(query), username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *SQLRepository) UpdatePassword(ctx context.Context, username, hash, salt string) error {
	query := `UPDATE users SET password_hash = ?, salt = ? WHERE username = ?`
	return r.execOne(ctx, query, hash, salt, username)
}

func (r *SQLRepository) TouchLogin(ctx context.Context, username string, at time.Time) error {
	query := `UPDATE users SET last_login = ? WHERE username = ?`
	return r.execOne(ctx, query, at.UTC(), username)
}

func (r *SQLRepository) UpdateContact(ctx context.Context, username string, c models.ContactInfo) error {
	query := `UPDATE users SET founding_date = ?, email = ?, phone = ?,
		facebook = ?, twitter = ?, instagram = ?, linkedin = ?
		WHERE username = ?`
	return r.execOne(ctx, query,
		nullTime(c.FoundingDate), c.Email, c.Phone, c.Facebook, c.Twitter, c.Instagram, c.LinkedIn, username)
}

func (r *SQLRepository) Delete(ctx context.Context, username string) error {
	return r.execOne(ctx, `DELETE FROM users WHERE username = ?`, username)
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectColumns+` ORDER BY created_at DESC, username`))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// execOne runs a statement that must touch exactly one row; zero rows
// means the username does not exist.
func (r *SQLRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u            models.User
		lastLogin    sql.NullTime
		foundingDate sql.NullTime
	)
	err := s.Scan(&u.UserName, &u.PasswordHash, &u.Salt, &u.CreatedAt, &lastLogin,
		&foundingDate, &u.Contact.Email, &u.Contact.Phone, &u.Contact.Facebook,
		&u.Contact.Twitter, &u.Contact.Instagram, &u.Contact.LinkedIn)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	if foundingDate.Valid {
		t := foundingDate.Time
		u.Contact.FoundingDate = &t
	}
	return &u, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
