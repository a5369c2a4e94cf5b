package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/lockx"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/auth"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/registry"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
)

// RosterLoader loads the current roster table.
type RosterLoader interface {
	Load(ctx context.Context) (*registry.Table, error)
}

// Credentials is what the gate needs from the credential store.
type Credentials interface {
	Register(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) bool
	TouchLogin(ctx context.Context, username string)
}

// Gate decides who may log in: the entity must be in the roster and its
// password must verify. It also turns sessions into signed tokens backed by
// the in-memory session table.
type Gate struct {
	roster   RosterLoader
	creds    Credentials
	sessions *session.Store
	secret   []byte
	log      logging.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	// per entity; orders StartSession against Revoke
	locks lockx.Keyed
}

func NewGate(roster RosterLoader, creds Credentials, sessions *session.Store, secretKey string, log logging.Logger, mx *metrics.Metrics) *Gate {
	return &Gate{
		roster:   roster,
		creds:    creds,
		sessions: sessions,
		secret:   []byte(secretKey),
		log:      log.With("module", "gate"),
		metrics:  mx,
		now:      time.Now,
	}
}

func (g *Gate) inRoster(ctx context.Context, username string) error {
	tbl, err := g.roster.Load(ctx)
	if err != nil {
		return err
	}
	g.metrics.ObserveRegistryLoad(tbl.Len(), tbl.Skipped())
	if _, ok := tbl.Lookup(username); !ok {
		return common.ErrorEntityNotFound
	}
	return nil
}

// Login checks the roster first and the password second. On success the
// last login is recorded once and an authenticated session is returned; on
// failure the input session comes back unchanged with
// common.ErrorEntityNotFound or common.ErrorInvalidCredentials.
func (g *Gate) Login(ctx context.Context, current session.Session, username, password string) (session.Session, error) {
	if err := g.inRoster(ctx, username); err != nil {
		if errors.Is(err, common.ErrorEntityNotFound) {
			g.metrics.ObserveLogin(metrics.LoginEntityNotFound)
			g.log.Info(ctx, "login rejected", "username", username, "reason", "entity not found")
		} else {
			g.metrics.ObserveLogin(metrics.LoginError)
		}
		return current, err
	}

	if !g.creds.Verify(ctx, username, password) {
		g.metrics.ObserveLogin(metrics.LoginInvalidCredentials)
		g.log.Info(ctx, "login rejected", "username", username, "reason", "invalid credentials")
		return current, common.ErrorInvalidCredentials
	}

	g.creds.TouchLogin(ctx, username)
	g.metrics.ObserveLogin(metrics.LoginSuccess)
	g.log.Info(ctx, "login", "username", username)
	return session.Authenticated(username), nil
}

// Logout always yields an anonymous session.
func (g *Gate) Logout(session.Session) session.Session {
	return session.Anonymous()
}

// Register creates credentials for an entity listed in the roster.
func (g *Gate) Register(ctx context.Context, username, password string) error {
	if err := g.inRoster(ctx, username); err != nil {
		return err
	}
	return g.creds.Register(ctx, username, password)
}

// StartSession logs username in and issues a token for the new session.
// It holds the entity's lock from the password check until the session is
// recorded, so a Revoke that follows a password change or deletion either
// runs first, and the check fails, or ends the new session.
func (g *Gate) StartSession(ctx context.Context, username, password string) (string, error) {
	unlock := g.locks.Lock(username)
	defer unlock()

	sess, err := g.Login(ctx, session.Anonymous(), username, password)
	if err != nil {
		return "", err
	}
	return g.IssueToken(sess)
}

// IssueToken records an authenticated session and returns its token.
func (g *Gate) IssueToken(sess session.Session) (string, error) {
	if !sess.IsAuthenticated() {
		return "", common.ErrorUnauthorized
	}
	id := g.sessions.Add(sess)
	tok, err := auth.GenerateToken(sess.UserName(), id, g.secret, g.now())
	if err != nil {
		g.sessions.Delete(id)
		return "", err
	}
	return tok, nil
}

// Resolve maps a token to its live session. Tokens of ended sessions are
// rejected with common.ErrInvalidToken.
func (g *Gate) Resolve(token string) (session.Session, error) {
	user, id, err := auth.ParseToken(token, g.secret)
	if err != nil {
		return session.Anonymous(), err
	}
	sess, ok := g.sessions.Get(id)
	if !ok || sess.UserName() != user {
		return session.Anonymous(), common.ErrInvalidToken
	}
	return sess, nil
}

// EndSession forgets the session behind token. Unknown tokens are ignored.
func (g *Gate) EndSession(token string) {
	if _, id, err := auth.ParseToken(token, g.secret); err == nil {
		g.sessions.Delete(id)
	}
}

// Revoke ends every session of username.
func (g *Gate) Revoke(ctx context.Context, username string) {
	unlock := g.locks.Lock(username)
	defer unlock()

	if n := g.sessions.DeleteUser(username); n > 0 {
		g.log.Info(ctx, "sessions revoked", "username", username, "count", n)
	}
}
