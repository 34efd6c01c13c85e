package service

import (
	"errors"
	"strings"
	"testing"

	"eduflow_backend/internal/repository"
	"eduflow_backend/internal/testutils"
	"eduflow_backend/internal/util"
)

func TestUpdateProfileName(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := testutils.CreateTestUser(t, db, testutils.WithName("Old Name"))

	updated, err := svc.UpdateProfile(user.ID, "New Name")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("Name = %q", updated.Name)
	}

	if _, err := svc.UpdateProfile(user.ID, "x"); !errors.Is(err, util.ErrInvalidArgument) {
		t.Errorf("short name: err = %v, want invalid-argument", err)
	}
	if _, err := svc.UpdateProfile(user.ID, strings.Repeat("x", 51)); !errors.Is(err, util.ErrInvalidArgument) {
		t.Errorf("long name: err = %v, want invalid-argument", err)
	}
	if _, err := svc.UpdateProfile(99999, "Ghost User"); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("missing user: err = %v, want not-found", err)
	}
}

func TestSetAvatar(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := testutils.CreateTestUser(t, db)
	if err := svc.SetAvatar(user.ID, "/uploads/avatars/1/pic.png"); err != nil {
		t.Fatalf("SetAvatar: %v", err)
	}

	stored, err := svc.Profile(user.ID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if stored.Image != "/uploads/avatars/1/pic.png" {
		t.Errorf("Image = %q", stored.Image)
	}
}
