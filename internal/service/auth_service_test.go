package service

import (
	"errors"
	"testing"
	"time"

	"pylearn_backend/internal/config"
	"pylearn_backend/internal/model"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/util"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegister_HashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "dave", Email: "dave@example.com", Password: "supersecret"}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "supersecret" {
		t.Fatalf("password must not be stored in plaintext")
	}

	var stored model.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Password == "supersecret" {
		t.Fatalf("stored password must be hashed")
	}
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	first := &model.User{Username: "erin", Email: "erin@example.com", Password: "supersecret"}
	if err := svc.Register(first); err != nil {
		t.Fatalf("register: %v", err)
	}

	sameName := &model.User{Username: "erin", Email: "other@example.com", Password: "supersecret"}
	if err := svc.Register(sameName); !errors.Is(err, util.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}

	sameEmail := &model.User{Username: "other", Email: "erin@example.com", Password: "supersecret"}
	if err := svc.Register(sameEmail); !errors.Is(err, util.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestRegister_UniqueIndexRaceMapsToUserExists(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	first := &model.User{Username: "judy", Email: "judy@example.com", Password: "supersecret"}
	if err := svc.Register(first); err != nil {
		t.Fatalf("register: %v", err)
	}

	// 软删除后预检查查不到这一行，但唯一索引仍然占着，
	// 等价于并发注册绕过预检查直接撞索引的情形
	if err := db.Delete(first).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	again := &model.User{Username: "judy", Email: "judy@example.com", Password: "supersecret"}
	if err := svc.Register(again); !errors.Is(err, util.ErrUserExists) {
		t.Fatalf("expected ErrUserExists from the unique index path, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Username: "frank", Email: "frank@example.com", Password: "supersecret"}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, loggedIn, err := svc.Login("frank", "supersecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || loggedIn.ID != user.ID {
		t.Fatalf("expected a token for user %d", user.ID)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "frank" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, _, err := svc.Login("frank", "wrongpass"); !errors.Is(err, util.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("nobody", "supersecret"); !errors.Is(err, util.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for unknown user, got %v", err)
	}
}
