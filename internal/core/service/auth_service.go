package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
	"github.com/jobdeck/jobdeck-api/internal/metrics"
)

// AuthService implements registration and login. Login failures are
// reported as domain.ErrInvalidCredentials regardless of whether the
// username or the password was wrong.
type AuthService struct {
	repo    ports.UserRepository
	issuer  *TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

// NewAuthService wires the auth use cases. limiter may be nil, in which
// case login attempts are not throttled.
func NewAuthService(repo ports.UserRepository, issuer *TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, "", domain.ErrMissingFields
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidRole
	}

	// Pre-flight duplicate checks. The check-then-create pair is not
	// atomic; the unique indexes on the users collection are the backstop
	// for concurrent registrations with the same username or email.
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" {
		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			return nil, "", domain.ErrEmailExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Fail open: a limiter outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !ok {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return user, token, nil
}
