package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"child-immunization-tracker/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidRole      = errors.New("role must be parent or healthcare_worker")
	ErrNotFound         = errors.New("user not found")
	ErrIssuerNotEnabled = errors.New("token issuer not configured")
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

// SignInAnonymous crea un usuario nuevo sin rol y le emite un token.
func (s *Service) SignInAnonymous(ctx context.Context) (Session, error) {
	if s.issuer == nil {
		return Session{}, ErrIssuerNotEnabled
	}

	now := s.now()
	u := User{
		ID:        s.newID(),
		Anonymous: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	token, exp, err := s.issuer.Issue(ctx, auth.Claims{UserID: u.ID, Anonymous: true})
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	return Session{User: u, Token: token, ExpiresAt: exp}, nil
}

// Get devuelve el usuario. Si nunca se guardó (token externo), se arma uno sin rol.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return User{ID: id}, nil
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Service) SetRole(ctx context.Context, id string, role auth.Role) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	role = auth.Role(strings.TrimSpace(string(role)))
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}

	if err := s.repo.SetRole(ctx, id, role, s.now()); err != nil {
		return User{}, fmt.Errorf("set role: %w", err)
	}
	return s.Get(ctx, id)
}

// RoleOf lo usa el middleware para completar los claims en cada request.
func (s *Service) RoleOf(ctx context.Context, id string) (auth.Role, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}
