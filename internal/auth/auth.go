package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/naufalhakim/hr-management/internal/user"
)

// Session is the per-client authentication context. It is a snapshot of
// the user at login time, carried entirely in the signed token; there is
// no server-side session state or revocation list.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == user.RoleAdmin
}

func (s *Session) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Claims are the signed token claims backing a Session.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// TokenGenerator signs and validates session tokens.
type TokenGenerator interface {
	GenerateSessionToken(session *Session) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret     []byte
	SessionTTL time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

type ctxKey string

const contextSessionKey ctxKey = "session"

// SessionFromContext returns the session placed in context by the
// session middleware.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(contextSessionKey).(*Session)
	return session, ok
}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, contextSessionKey, session)
}
