package cli

import (
	"errors"

	"github.com/dmitrijs2005/cameportal/internal/client/client"
	"github.com/dmitrijs2005/cameportal/internal/common"
)

var errUsage = errors.New("usage")

// describe turns an error into a message for the operator.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrorEntityNotFound):
		return "the entity is not listed in the roster"
	case errors.Is(err, common.ErrorInvalidCredentials):
		return "incorrect password"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "the entity is already registered"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrorPartialWrite):
		return "the file could not be recorded, please upload it again"
	case errors.Is(err, client.ErrUnauthorized):
		return "not logged in or session expired"
	case errors.Is(err, client.ErrForbidden):
		return "admin key rejected"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	default:
		return err.Error()
	}
}
