package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/core/query"
)

func newTestUserService() (*UserService, *stubUserRepo) {
	repo := newStubUserRepo(
		domain.User{ID: 1, Email: "alice@example.com", Password: "pw", Rules: []string{domain.RoleUser}},
		domain.User{ID: 2, Email: "bob@example.com", Password: "pw2", Rules: []string{domain.RoleUser}},
	)
	return NewUserService(repo, zerolog.Nop()), repo
}

func TestUserService_Update_RequiresPasswordConfirmation(t *testing.T) {
	svc, repo := newTestUserService()

	_, err := svc.Update(context.Background(), 1, ports.UserUpdateInput{Email: "new@example.com", Password: "guess"})
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if domain.FieldOf(err) != "password" {
		t.Errorf("expected field password, got %q", domain.FieldOf(err))
	}
	if repo.stored(1).Email != "alice@example.com" {
		t.Error("record changed despite mismatch")
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	svc, repo := newTestUserService()

	_, err := svc.Update(context.Background(), 1, ports.UserUpdateInput{Email: "bob@example.com", Password: "pw"})
	if !errors.Is(err, domain.ErrEmailConflict) {
		t.Fatalf("expected ErrEmailConflict, got %v", err)
	}
	if domain.FieldOf(err) != "email" {
		t.Errorf("expected field email, got %q", domain.FieldOf(err))
	}
	if repo.stored(1).Email != "alice@example.com" {
		t.Error("record changed despite conflict")
	}
}

func TestUserService_Update_CopiesAllowListedFields(t *testing.T) {
	svc, _ := newTestUserService()

	u, err := svc.Update(context.Background(), 1, ports.UserUpdateInput{
		Email:       "alice@new.io",
		Password:    "pw",
		PhoneNumber: "555",
		Address:     domain.Address{City: "Town", Address: "Main 1"},
		Avatar:      "a.png",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Email != "alice@new.io" || u.PhoneNumber != "555" || u.Address.City != "Town" || u.Avatar != "a.png" {
		t.Errorf("fields not applied: %+v", u)
	}
	if len(u.Rules) != 1 || u.Rules[0] != domain.RoleUser {
		t.Errorf("rules must be untouched, got %v", u.Rules)
	}
}

func TestUserService_Create_ForcesUserRole(t *testing.T) {
	svc, _ := newTestUserService()

	u, err := svc.Create(context.Background(), ports.UserInput{Email: "carol@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != 3 || len(u.Rules) != 1 || u.Rules[0] != domain.RoleUser {
		t.Errorf("unexpected user %+v", u)
	}

	if _, err := svc.Create(context.Background(), ports.UserInput{Email: "carol@example.com"}); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUserService_GrantRole_IsIdempotent(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, _ = svc.GrantRole(ctx, 2, domain.RoleUserAdmin)
	u, err := svc.GrantRole(ctx, 2, domain.RoleUserAdmin)
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	if len(u.Rules) != 2 {
		t.Errorf("expected [user user_admin], got %v", u.Rules)
	}
}

func TestUserService_UpdateAccount(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	if _, err := svc.UpdateAccount(ctx, 2, ports.AccountSettingInput{NewEmail: "alice@example.com", NewPassword: "z"}); !errors.Is(err, domain.ErrEmailConflict) {
		t.Fatalf("expected ErrEmailConflict, got %v", err)
	}
	u, err := svc.UpdateAccount(ctx, 2, ports.AccountSettingInput{NewEmail: "robert@example.com", NewPassword: "z"})
	if err != nil {
		t.Fatalf("update account: %v", err)
	}
	if u.Email != "robert@example.com" || u.Password != "z" {
		t.Errorf("credentials not applied: %+v", u)
	}
	if _, err := svc.UpdateAccount(ctx, 99, ports.AccountSettingInput{NewEmail: "x@y.z"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Query_SearchesEmail(t *testing.T) {
	svc, _ := newTestUserService()

	page, err := svc.Query(context.Background(), query.Spec{Search: "BOB", Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.TotalRecords != 1 || page.Results[0].ID != 2 {
		t.Errorf("expected bob only, got %+v", page)
	}
}
