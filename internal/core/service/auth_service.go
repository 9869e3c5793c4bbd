package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/pkg/metrics"
)

const (
	bearerPrefix = "Bearer "

	// DefaultSessionTTL is how long a token issued by Login or Register lives.
	DefaultSessionTTL = 10 * time.Minute
)

// AuthService implements login, registration and token validation against
// the session fields stored on user records.
type AuthService struct {
	users ports.UserRepository
	ttl   time.Duration
	now   func() time.Time
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{users: users, ttl: ttl, now: time.Now, log: log}
}

// Login issues a fresh token for the user matching both email and password.
// Any previous token of that user stops working.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || user.Password != password {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.NewError(domain.ErrInvalidCredentials, "", "Email or password is invalid")
	}

	updated, err := s.users.Update(ctx, user.ID, func(u *domain.User) error {
		if u.Email != email || u.Password != password {
			return domain.NewError(domain.ErrInvalidCredentials, "", "Email or password is invalid")
		}
		s.issueToken(u)
		return nil
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrInvalidCredentials, "", "Email or password is invalid")
		}
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Int("user_id", updated.ID).Msg("user logged in")
	return updated, nil
}

// Register creates a plain user and logs it in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	now := s.now()
	expires := now.Add(s.ttl)
	created, err := s.users.Create(ctx, domain.User{
		Email:    email,
		Password: password,
		Token:    newToken(now, email),
		Address:  domain.Address{},
		Rules:    []string{domain.RoleUser},
		Expired:  &expires,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewError(domain.ErrEmailAlreadyExists, "email", "This email already exists!")
		}
		return nil, err
	}

	s.log.Info().Int("user_id", created.ID).Msg("user registered")
	return created, nil
}

// ValidateToken extracts the token from an Authorization header and resolves
// its owner. Expiry is checked lazily: a token found past its window is
// cleared on the spot and rejected.
func (s *AuthService) ValidateToken(ctx context.Context, bearerHeader string) (*domain.User, error) {
	token, err := ExtractBearer(bearerHeader)
	if err != nil {
		return nil, err
	}
	return s.Authenticate(ctx, token)
}

// Authenticate resolves an already extracted token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.NewError(domain.ErrMissingToken, "", "Token is required")
	}

	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		return nil, invalidSession()
	}

	if user.SessionExpired(s.now()) {
		s.expire(ctx, user.ID, token)
		return nil, invalidSession()
	}
	return user, nil
}

// Logout clears the caller's token. A second logout with the same token fails
// because the token no longer resolves.
func (s *AuthService) Logout(ctx context.Context, bearerHeader string) (*domain.User, error) {
	user, err := s.ValidateToken(ctx, bearerHeader)
	if err != nil {
		return nil, err
	}
	token := user.Token

	updated, err := s.users.Update(ctx, user.ID, func(u *domain.User) error {
		if u.Token != token {
			return invalidSession()
		}
		u.ClearSession()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalidSession()
		}
		return nil, err
	}

	s.log.Info().Int("user_id", updated.ID).Msg("user logged out")
	return updated, nil
}

// CheckPermission reports whether the header resolves to a live session whose
// role set contains at least one of roles.
func (s *AuthService) CheckPermission(ctx context.Context, bearerHeader string, roles ...string) bool {
	user, err := s.ValidateToken(ctx, bearerHeader)
	if err != nil {
		return false
	}
	return user.HasAnyRole(roles...)
}

// Authorize is CheckPermission with the failure reason: token errors pass
// through unchanged and a missing role yields domain.ErrAccessDenied.
func (s *AuthService) Authorize(ctx context.Context, bearerHeader string, roles ...string) (*domain.User, error) {
	user, err := s.ValidateToken(ctx, bearerHeader)
	if err != nil {
		return nil, err
	}
	if !user.HasAnyRole(roles...) {
		return nil, domain.NewError(domain.ErrAccessDenied, "", "Access denied")
	}
	return user, nil
}

// expire clears token from the user only if it is still the stored one, so a
// concurrent fresh login is never undone. It reports whether it cleared
// anything; only those clears count as expired sessions.
func (s *AuthService) expire(ctx context.Context, userID int, token string) bool {
	cleared := false
	_, err := s.users.Update(ctx, userID, func(u *domain.User) error {
		if u.Token == token {
			u.ClearSession()
			cleared = true
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Int("user_id", userID).Msg("failed to clear expired session")
		}
		return false
	}
	if cleared {
		metrics.SessionsExpiredTotal.Inc()
	}
	return cleared
}

func (s *AuthService) issueToken(u *domain.User) {
	now := s.now()
	expires := now.Add(s.ttl)
	u.Token = newToken(now, u.Email)
	u.Expired = &expires
}

// ExtractBearer returns the trimmed token following the literal "Bearer "
// prefix of an Authorization header value.
func ExtractBearer(header string) (string, error) {
	_, rest, found := strings.Cut(header, bearerPrefix)
	if !found {
		return "", domain.NewError(domain.ErrMissingToken, "", "Token is required")
	}
	rest, _, _ = strings.Cut(rest, bearerPrefix)
	token := strings.TrimSpace(rest)
	if token == "" {
		return "", domain.NewError(domain.ErrMissingToken, "", "Token is required")
	}
	return token, nil
}

// newToken hashes the issue instant. The salt keeps two accounts logging in
// within the same clock tick from sharing a token.
func newToken(now time.Time, salt string) string {
	sum := md5.Sum([]byte(strconv.FormatInt(now.UnixNano(), 10) + ":" + salt))
	return hex.EncodeToString(sum[:])
}

func invalidSession() error {
	return domain.NewError(domain.ErrInvalidOrExpiredToken, "", "Login session expired, please login again!")
}
