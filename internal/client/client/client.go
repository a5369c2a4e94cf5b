package client

import (
	"context"

	"github.com/dmitrijs2005/cameportal/internal/client/models"
)

// Client is the portal API as seen by the CLI. Password arguments are raw
// bytes so callers can wipe them.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	UserName() string

	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, contact models.Contact) error
	Upload(ctx context.Context, docType, fileName string, content []byte) (*models.Document, error)
	Documents(ctx context.Context) (*models.ComplianceReport, error)
	Download(ctx context.Context, docType string) (*models.Document, []byte, error)

	Users(ctx context.Context, search string) ([]models.UserSummary, error)
	Stats(ctx context.Context) (*models.UserStats, error)
	Export(ctx context.Context, search string) (*models.Table, error)
	ResetPassword(ctx context.Context, username string, password []byte) error
	DeleteUser(ctx context.Context, username string) error
	Entities(ctx context.Context, search string) (*models.EntityList, error)
	Compliance(ctx context.Context, entity string) (*models.ComplianceReport, error)
	UploadLog(ctx context.Context, entity string) ([]string, error)
}
