package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/server/models"
)

// Repository persists credential rows keyed by username.
// Lookups and mutations of an absent username return common.ErrorNotFound;
// Create on an existing username returns common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// LockByUsername reads the row and, where the engine supports it, holds
	// a row lock until the surrounding transaction ends.
	LockByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, hash, salt string) error
	TouchLogin(ctx context.Context, username string, at time.Time) error
	UpdateContact(ctx context.Context, username string, contact models.ContactInfo) error
	Delete(ctx context.Context, username string) error
	// List returns every row, newest registration first.
	List(ctx context.Context) ([]*models.User, error)
}
