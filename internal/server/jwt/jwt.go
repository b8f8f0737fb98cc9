package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Issuer записывается в поле iss каждого токена
const Issuer = "lingosync"

// ErrInvalidToken возвращается для любого токена, не прошедшего проверку
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims of an access token.
// Subject содержит user_id.
type Claims struct {
	gojwt.RegisteredClaims
}

// UserID returns the user the token was issued to
func (c *Claims) UserID() string {
	return c.Subject
}

// Service provides JWT token generation and validation
type Service struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// Option настраивает Service
type Option func(*Service)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new JWT service
// secret should be a cryptographically secure random string
func NewService(secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the lifetime of issued access tokens
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// GenerateAccessToken creates a new signed access token for userID.
// Возвращает токен и время жизни в секундах.
func (s *Service) GenerateAccessToken(userID string) (string, int64, error) {
	if userID == "" {
		return "", 0, fmt.Errorf("user id cannot be empty")
	}

	now := s.now()
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, int64(s.ttl.Seconds()), nil
}

// ValidateAccessToken проверяет подпись, алгоритм, издателя и срок действия токена
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := gojwt.ParseWithClaims(tokenString, claims, func(token *gojwt.Token) (any, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		gojwt.WithIssuer(Issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
