package service

import (
	"errors"
	"testing"
	"time"

	"eduflow_backend/internal/config"
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/testutils"
	"eduflow_backend/internal/util"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-service-test-secret-0123456789"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{
		Name:     "Alice Johnson",
		Email:    "alice.johnson@example.com",
		Password: "Password123",
		Role:     model.RoleStudent,
	}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "Password123" {
		t.Fatal("password stored in plaintext")
	}

	token, err := svc.Login("alice.johnson@example.com", "Password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Role != model.RoleStudent {
		t.Errorf("claims.Role = %s", claims.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newAuthService(db)

	first := &model.User{Name: "Bob Smith", Email: "bob@example.com", Password: "Password123", Role: model.RoleStudent}
	if err := svc.Register(first); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	second := &model.User{Name: "Impostor", Email: "bob@example.com", Password: "Password456", Role: model.RoleEducator}
	if err := svc.Register(second); !errors.Is(err, util.ErrConflict) {
		t.Fatalf("second Register: err = %v, want conflict", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Carol White", Email: "carol@example.com", Password: "Password123", Role: model.RoleStudent}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login("carol@example.com", "wrong-password"); !errors.Is(err, util.ErrUnauthenticated) {
		t.Errorf("wrong password: err = %v, want unauthenticated", err)
	}
	if _, err := svc.Login("nobody@example.com", "Password123"); !errors.Is(err, util.ErrUnauthenticated) {
		t.Errorf("unknown email: err = %v, want unauthenticated", err)
	}
}
