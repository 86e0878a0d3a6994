package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is the only error Verify returns. Malformed input, a bad
// signature, expiry and missing claims are deliberately indistinguishable.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of s reading time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs an HS256 token for id that expires after the service TTL.
func (s *TokenService) Issue(id Identity) (string, error) {
	if !id.complete() {
		return "", errors.New("auth: incomplete identity")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: id.UserID,
		Email:  id.Email,
		Role:   string(id.Role),
	})

	return token.SignedString(s.secret)
}

// Verify returns the identity embedded in a valid token.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	sess, err := s.VerifySession(tokenString)
	if err != nil {
		return Identity{}, err
	}
	return sess.Identity, nil
}

// VerifySession is Verify plus the token expiry.
func (s *TokenService) VerifySession(tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	id := Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   Role(claims.Role),
	}
	if !id.complete() || claims.ExpiresAt == nil {
		return Session{}, ErrInvalidToken
	}

	return Session{Identity: id, ExpiresAt: claims.ExpiresAt.Time}, nil
}
