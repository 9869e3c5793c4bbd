package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/core/query"
	"github.com/99minutos/commerce-api/internal/pkg/metrics"
)

// UserSchema wires users into the query pipeline: search on email only.
var UserSchema = query.Schema[domain.User]{
	Search: func(u domain.User) string { return u.Email },
}

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) All(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Query(ctx context.Context, spec query.Spec) (*query.Page[domain.User], error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := query.Run(users, UserSchema, spec)
	metrics.QueriesTotal.WithLabelValues(domain.KindUsers).Inc()
	return &page, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, userNotFound(id))
	}
	return u, nil
}

// Create adds a user on behalf of an admin. Whatever roles the caller had in
// mind, the new account starts as a plain user without a session.
func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	created, err := s.repo.Create(ctx, domain.User{
		Email:       in.Email,
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Avatar:      in.Avatar,
		Rules:       []string{domain.RoleUser},
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewError(domain.ErrEmailAlreadyExists, "email", "This email already exists!")
		}
		return nil, err
	}
	s.log.Info().Int("user_id", created.ID).Msg("user created")
	return created, nil
}

// Update applies a profile change. The submitted password must match the
// stored one; only email, password, address, avatar and phone number are
// copied.
func (s *UserService) Update(ctx context.Context, id int, in ports.UserUpdateInput) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		if in.Password != u.Password {
			return domain.NewError(domain.ErrPasswordMismatch, "password", "Confirm password is incorrect!")
		}
		u.Email = in.Email
		u.Password = in.Password
		u.Address = in.Address
		u.Avatar = in.Avatar
		u.PhoneNumber = in.PhoneNumber
		return nil
	})
	if err != nil {
		return nil, s.mapWriteError(err, id)
	}
	s.log.Info().Int("user_id", id).Msg("user profile updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int) (*domain.User, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, userNotFound(id))
	}
	s.log.Info().Int("user_id", id).Msg("user deleted")
	return removed, nil
}

// UpdateAccount overwrites a user's credentials without confirmation.
func (s *UserService) UpdateAccount(ctx context.Context, id int, in ports.AccountSettingInput) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		u.Email = in.NewEmail
		u.Password = in.NewPassword
		return nil
	})
	if err != nil {
		return nil, s.mapWriteError(err, id)
	}
	s.log.Info().Int("user_id", id).Msg("account credentials changed")
	return updated, nil
}

// GrantRole adds role to the user's role set. Granting a role twice is a no-op.
func (s *UserService) GrantRole(ctx context.Context, id int, role string) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		u.AddRole(role)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, userNotFound(id))
	}
	s.log.Info().Int("user_id", id).Str("role", role).Msg("role granted")
	return updated, nil
}

func (s *UserService) mapWriteError(err error, id int) error {
	if errors.Is(err, domain.ErrEmailConflict) {
		return domain.NewError(domain.ErrEmailConflict, "email", "New Email is already exists!")
	}
	return notFoundAs(err, userNotFound(id))
}

func userNotFound(id int) error {
	return domain.NewError(domain.ErrNotFound, "id", "Cannot find user with id:"+strconv.Itoa(id))
}
