// Package services implements the portal's use cases on top of the
// credential store, the roster feed and the document vault.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/cryptox"
	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/lockx"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/dmitrijs2005/cameportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cameportal/internal/server/repositories/users"
	"github.com/dmitrijs2005/cameportal/internal/timex"
)

const activityWindow = 30 * 24 * time.Hour

// ExportHeader names the columns of ExportSnapshot.
var ExportHeader = []string{
	"username", "created_at", "last_login", "fecha_fundacion", "email",
	"telefono", "facebook", "twitter", "instagram", "linkedin",
}

// UserService owns credential rows. Every mutation runs in its own
// transaction; mutations of one username are serialized in-process and, on
// engines that support it, by a row lock.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
	locks       lockx.Keyed
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger, mx *metrics.Metrics) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "users"),
		metrics:     mx,
		now:         time.Now,
	}
}

// SetClock replaces time.Now. Tests only.
func (s *UserService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *UserService) mutate(ctx context.Context, username string, fn func(ctx context.Context, repo users.Repository) error) error {
	unlock := s.locks.Lock(username)
	defer unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, s.repomanager.Users(tx))
	})
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}

// Register creates a credential row with a fresh salt.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}

	hash, salt, err := cryptox.HashPassword(password, "")
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.mutate(ctx, username, func(ctx context.Context, repo users.Repository) error {
		return repo.Create(ctx, &models.User{
			UserName:     username,
			PasswordHash: hash,
			Salt:         salt,
			CreatedAt:    s.now(),
		})
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	s.metrics.Registrations.Inc()
	s.log.Info(ctx, "user registered", "username", username)
	return nil
}

// ResetPassword replaces hash and salt without asking for the old
// password. Only staff may call it.
func (s *UserService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if err := validateCredentials(username, newPassword); err != nil {
		return err
	}

	hash, salt, err := cryptox.HashPassword(newPassword, "")
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.mutate(ctx, username, func(ctx context.Context, repo users.Repository) error {
		if _, err := repo.LockByUsername(ctx, username); err != nil {
			return err
		}
		return repo.UpdatePassword(ctx, username, hash, salt)
	})
	if err != nil {
		return s.mapErr("reset password", err)
	}

	s.metrics.PasswordResets.Inc()
	s.log.Info(ctx, "password reset", "username", username)
	return nil
}

// DeleteUser removes the credential row for good.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	err := s.mutate(ctx, username, func(ctx context.Context, repo users.Repository) error {
		if _, err := repo.LockByUsername(ctx, username); err != nil {
			return err
		}
		return repo.Delete(ctx, username)
	})
	if err != nil {
		return s.mapErr("delete user", err)
	}

	s.metrics.UsersDeleted.Inc()
	s.log.Info(ctx, "user deleted", "username", username)
	return nil
}

// TouchLogin records a successful login. Failures are logged only.
func (s *UserService) TouchLogin(ctx context.Context, username string) {
	err := s.mutate(ctx, username, func(ctx context.Context, repo users.Repository) error {
		return repo.TouchLogin(ctx, username, s.now())
	})
	if err != nil {
		s.log.Warn(ctx, "last login not recorded", "username", username, "error", err)
	}
}

// UpdateContactInfo replaces every contact field at once.
func (s *UserService) UpdateContactInfo(ctx context.Context, username string, contact models.ContactInfo) error {
	err := s.mutate(ctx, username, func(ctx context.Context, repo users.Repository) error {
		if _, err := repo.LockByUsername(ctx, username); err != nil {
			return err
		}
		return repo.UpdateContact(ctx, username, contact)
	})
	if err != nil {
		return s.mapErr("update contact", err)
	}
	return nil
}

// Verify reports whether password matches the stored credential. An
// unknown user or a failing store is simply false.
func (s *UserService) Verify(ctx context.Context, username, password string) bool {
	u, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "credential lookup failed", "username", username, "error", err)
		}
		return false
	}
	return cryptox.VerifyPassword(password, u.PasswordHash, u.Salt)
}

func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, s.mapErr("get user", err)
	}
	return u, nil
}

// List returns users newest first whose name contains search, ignoring
// case. An empty search returns everyone.
func (s *UserService) List(ctx context.Context, search string) ([]*models.User, error) {
	all, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, s.mapErr("list users", err)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return all, nil
	}
	out := make([]*models.User, 0, len(all))
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.UserName), term) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Stats summarizes registrations and activity relative to now.
func (s *UserService) Stats(ctx context.Context) (*models.UserStats, error) {
	all, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, s.mapErr("user stats", err)
	}
	return computeStats(all, s.now()), nil
}

// computeStats buckets registrations by calendar month in now's zone, which
// is local time outside tests.
func computeStats(all []*models.User, now time.Time) *models.UserStats {
	since := now.Add(-activityWindow)
	st := &models.UserStats{Total: len(all)}
	perMonth := map[string]int{}

	for _, u := range all {
		if u.CreatedAt.After(since) {
			st.NewLast30Days++
		}
		if u.LastLogin != nil && u.LastLogin.After(since) {
			st.ActiveLast30Days++
		}
		perMonth[u.CreatedAt.In(now.Location()).Format("2006-01")]++
	}

	for month, n := range perMonth {
		st.RegistrationsPerMonth = append(st.RegistrationsPerMonth, models.MonthCount{Month: month, Count: n})
	}
	sort.Slice(st.RegistrationsPerMonth, func(i, j int) bool {
		return st.RegistrationsPerMonth[i].Month < st.RegistrationsPerMonth[j].Month
	})
	return st
}

// ExportSnapshot returns the filtered user list as text cells, dates as
// dd/mm/yyyy HH:MM. Credentials are never exported.
func (s *UserService) ExportSnapshot(ctx context.Context, search string) (*models.Table, error) {
	list, err := s.List(ctx, search)
	if err != nil {
		return nil, err
	}

	t := &models.Table{Header: append([]string(nil), ExportHeader...)}
	for _, u := range list {
		created := u.CreatedAt
		c := u.Contact
		t.Rows = append(t.Rows, []string{
			u.UserName,
			timex.FormatDateTime(&created),
			timex.FormatDateTime(u.LastLogin),
			timex.FormatDate(c.FoundingDate),
			c.Email, c.Phone, c.Facebook, c.Twitter, c.Instagram, c.LinkedIn,
		})
	}
	return t, nil
}

func (s *UserService) mapErr(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
