package driver

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Verifier проверяет пароль водителя.
type Verifier interface {
	Verify(ctx context.Context, login, secret string) (Outcome, error)
}

// HashComparer в проде - bcrypt.CompareHashAndPassword.
type HashComparer func(hashedPassword, password []byte) error

type Service struct {
	repo      Repository
	validator Validator
	compare   HashComparer
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		compare:   bcrypt.CompareHashAndPassword,
		log:       log.With("component", "driver_service"),
	}
}

// WithHashComparer заменяет функцию сравнения хэшей (для тестов).
func (s *Service) WithHashComparer(c HashComparer) *Service {
	s.compare = c
	return s
}

// Verify ищет водителя по логину и сравнивает пароль один раз,
// в зависимости от способа хранения.
func (s *Service) Verify(ctx context.Context, login, secret string) (Outcome, error) {
	if err := s.validator.ValidateLogin(login, secret); err != nil {
		return Outcome{}, err
	}

	cred, err := s.repo.FindByLogin(ctx, login)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("login attempt for unknown driver", "login", login)
		return Outcome{Status: StatusNotFound}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("find driver: %w", err)
	}

	if !s.matches(cred.Secret, []byte(secret)) {
		s.log.Info("wrong secret", "login", login)
		return Outcome{Status: StatusWrongSecret}, nil
	}

	s.log.Debug("driver authenticated", "login", login)
	return Outcome{Status: StatusSuccess, DriverName: cred.DisplayName}, nil
}

func (s *Service) matches(stored Secret, supplied []byte) bool {
	switch sec := stored.(type) {
	case HashedSecret:
		return s.compare(sec.Digest, supplied) == nil
	case PlaintextSecret:
		return subtle.ConstantTimeCompare(sec.Value, supplied) == 1
	default:
		return false
	}
}
