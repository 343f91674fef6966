package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBadCredentials = errors.New("bad credentials")

type Service struct {
	repo Repository
	ttl  time.Duration
}

func NewService(repo Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

func (s *Service) Register(ctx context.Context, email, password string) (*User, string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, "", err
	}
	token, err := s.issue(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrNotFound {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrBadCredentials
	}
	token, err := s.issue(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Resolve maps a bearer token to a user id. An unknown or expired token
// resolves to the empty string, never to an error the caller must branch on.
func (s *Service) Resolve(ctx context.Context, token string) string {
	if token == "" {
		return ""
	}
	sess, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return ""
	}
	if time.Now().After(sess.ExpiresAt) {
		return ""
	}
	return sess.UserID
}

func (s *Service) issue(ctx context.Context, userID string) (string, error) {
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return "", err
	}
	return sess.Token, nil
}
