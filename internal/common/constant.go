// Package common contains shared constants and sentinel errors used across
// the portal server and its command-line client.
package common

const (
	// SessionTokenHeaderName is the gRPC metadata key carrying a member
	// session token.
	SessionTokenHeaderName = "session_token"

	// AdminKeyHeaderName is the gRPC metadata key carrying the staff key.
	AdminKeyHeaderName = "admin_key"
)
