// Package session models the two-state member session (anonymous or
// authenticated as one entity) and the server-side table of live sessions.
package session

import "context"

// Session is a value passed along the call chain. The zero value is
// Anonymous.
type Session struct {
	userName string
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// Authenticated returns a session bound to the given entity.
func Authenticated(userName string) Session {
	return Session{userName: userName}
}

func (s Session) IsAuthenticated() bool {
	return s.userName != ""
}

// UserName is empty for anonymous sessions.
func (s Session) UserName() string {
	return s.userName
}

func (s Session) String() string {
	if !s.IsAuthenticated() {
		return "Anonymous"
	}
	return "Authenticated(" + s.userName + ")"
}

type ctxKey struct{}

// NewContext returns a child context carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}
