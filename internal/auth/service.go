package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/naufalhakim/hr-management/internal/user"
)

// UserGetter is the slice of the user repository the guard needs: the
// indexed email lookup backing authentication.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service is the session/auth guard.
type Service struct {
	users      UserGetter
	tokenGen   TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

func NewService(users UserGetter, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func NewJWTTokenGenerator(secret string, sessionTTL time.Duration) *JWTTokenGenerator {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:     []byte(secret),
		SessionTTL: sessionTTL,
	}
}

// Authenticate validates credentials against the stored hash and returns
// a signed session. Missing user and hash mismatch are indistinguishable
// to the caller.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, dto.Email)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.logger.Error("user lookup failed during login", "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}

	token, err := s.tokenGen.GenerateSessionToken(session)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Session: session}, nil
}

// ValidateSessionToken checks the token signature and expiry and
// rebuilds the session snapshot from its claims. No store round trip:
// the session is client-held by design.
func (s *Service) ValidateSessionToken(tokenString string) (*Session, error) {
	claims, err := s.tokenGen.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      role,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateSessionToken signs the session snapshot with an explicit expiry.
func (j *JWTTokenGenerator) GenerateSessionToken(session *Session) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email:     session.Email,
		Role:      string(session.Role),
		FirstName: session.FirstName,
		LastName:  session.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken validates a session token and returns its claims.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
