package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/logging"
	"crmdesk-backend/internal/models"
)

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DefaultSessionTTL is how long a session lives; it is not extended on use
const DefaultSessionTTL = 24 * time.Hour

// Service handles authentication logic
type Service struct {
	userRepo    *database.UserRepo
	sessionRepo *database.SessionRepo
	ttl         time.Duration
	log         logging.Logger
}

// NewService creates a new auth service. A non-positive ttl means DefaultSessionTTL.
func NewService(userRepo *database.UserRepo, sessionRepo *database.SessionRepo, ttl time.Duration, log logging.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		ttl:         ttl,
		log:         log,
	}
}

// LoginResult represents a successful login
type LoginResult struct {
	User    *models.User
	Session *models.Session
	// Bootstrapped is set when this login created the first (admin) user
	Bootstrapped bool
}

// SessionTTL returns the lifetime given to new sessions
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

// Login authenticates a user and creates a session. While no user exists
// the first caller becomes the admin with the submitted credentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	if count == 0 {
		result, err := s.bootstrapAdmin(ctx, username, password)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		// Someone else bootstrapped first, fall through to a normal login
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			s.log.Warn(ctx, "login failed", "username", username, "reason", "unknown user")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := VerifyPassword(password, user.PasswordHash)
	if err != nil || !valid {
		s.log.Warn(ctx, "login failed", "username", username, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessionRepo.Create(ctx, user.ID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &LoginResult{User: user, Session: session}, nil
}

// bootstrapAdmin returns (nil, nil) when another request created the first user
func (s *Service) bootstrapAdmin(ctx context.Context, username, password string) (*LoginResult, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, created, err := s.userRepo.CreateFirstAdmin(ctx, username, hash)
	if errors.Is(err, database.ErrUserAlreadyExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create first admin: %w", err)
	}
	if !created {
		return nil, nil
	}

	s.log.Info(ctx, "created initial admin user", "username", username, "user_id", user.ID)

	session, err := s.sessionRepo.Create(ctx, user.ID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &LoginResult{User: user, Session: session, Bootstrapped: true}, nil
}

// Logout invalidates a session. Unknown sessions are ignored.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Invalidate(ctx, sessionID)
}

// Authenticate resolves a session identifier to its owner
func (s *Service) Authenticate(ctx context.Context, sessionID string) (*models.Identity, error) {
	identity, err := s.sessionRepo.Resolve(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, database.ErrSessionNotFound) {
			s.log.Error(ctx, "session lookup failed", "error", err)
		}
		return nil, err
	}
	return identity, nil
}
