// Package cli provides the interactive portal command-line client.
//
// It wires configuration, the gRPC client and a read-eval-print loop with
// member commands (register, login, profile, document upload and download)
// and, when an admin key is configured, staff commands (user list,
// statistics, CSV export, password reset, deletion, roster browsing and
// per-entity compliance).
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
