// Package token emite y verifica los bearer tokens de sesión (HS256).
package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"child-immunization-tracker/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("token secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

const DefaultTTL = 30 * 24 * time.Hour

type Config struct {
	Secret string
	Issuer string        // opcional; si viene, se exige en Verify
	TTL    time.Duration // default 30 días
}

// sessionClaims es el payload firmado. sub = user id.
type sessionClaims struct {
	Anonymous bool `json:"anon,omitempty"`
	jwt.RegisteredClaims
}

// Manager implementa auth.AuthVerifier y auth.TokenIssuer.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func New(cfg Config) (*Manager, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrNotConfigured
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		issuer: strings.TrimSpace(cfg.Issuer),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, time.Time, error) {
	uid := strings.TrimSpace(c.UserID)
	if uid == "" {
		return "", time.Time{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	now := m.now()
	exp := now.Add(m.ttl)

	claims := sessionClaims{
		Anonymous: c.Anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify valida firma, algoritmo y vencimiento. El rol no viaja en el token.
func (m *Manager) Verify(_ context.Context, raw string) (auth.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return auth.Claims{UserID: claims.Subject, Anonymous: claims.Anonymous}, nil
}
