package auth

import (
	"context"
	"time"
)

// Session is the authenticated caller of one request.
type Session struct {
	Identity  Identity
	ExpiresAt time.Time
}

// Active reports whether the session is still usable at now.
func (s Session) Active(now time.Time) bool {
	return s.Identity.complete() && now.Before(s.ExpiresAt)
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored in ctx. Expiry is checked on every
// call, so a session that outlives its token is rejected.
func SessionFrom(ctx context.Context, now time.Time) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok || !s.Active(now) {
		return Session{}, false
	}
	return s, true
}
