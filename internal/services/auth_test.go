package services

import (
	"testing"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/utils"
	"gorm.io/gorm"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	user := models.User{
		Username: username,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, &config.JWTConfig{
		Secret:     "test-secret-for-service-testing",
		ExpireHour: 24,
	})
}

func TestAuthService_Login(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "admin", "correct-password", "admin")
	svc := newAuthService(db)

	result, err := svc.Login(&LoginRequest{
		Username: "admin",
		Password: "correct-password",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.AccessToken == "" {
		t.Error("access token should not be empty")
	}
	if result.RefreshToken == "" {
		t.Error("refresh token should not be empty")
	}
	if result.User.LastLogin == nil {
		t.Error("last login should be set")
	}

	// Refresh token is stored hashed, never in the clear
	var stored models.RefreshToken
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("refresh token record missing: %v", err)
	}
	if stored.TokenHash == result.RefreshToken {
		t.Error("refresh token must be stored hashed")
	}
	if stored.CreatedByIP != "127.0.0.1" {
		t.Errorf("CreatedByIP = %q, expected 127.0.0.1", stored.CreatedByIP)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "admin", "correct-password", "admin")
	svc := newAuthService(db)

	_, err := svc.Login(&LoginRequest{
		Username: "admin",
		Password: "wrong-password",
	}, "", "")
	if err == nil {
		t.Fatal("wrong password should fail")
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(testDB(t))

	_, err := svc.Login(&LoginRequest{
		Username: "ghost",
		Password: "whatever",
	}, "", "")
	if err == nil {
		t.Fatal("unknown user should fail")
	}
}

func TestAuthService_Login_DisabledUser(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "admin", "correct-password", "admin")
	db.Model(user).Update("is_active", false)
	svc := newAuthService(db)

	_, err := svc.Login(&LoginRequest{
		Username: "admin",
		Password: "correct-password",
	}, "", "")
	if err == nil {
		t.Fatal("disabled user should not be able to log in")
	}
}

func TestAuthService_Refresh_Rotation(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "admin", "correct-password", "admin")
	svc := newAuthService(db)

	login, err := svc.Login(&LoginRequest{
		Username: "admin",
		Password: "correct-password",
	}, "", "")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(login.RefreshToken, "", "")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh must rotate the token")
	}

	// The old token is revoked and unusable
	if _, err := svc.Refresh(login.RefreshToken, "", ""); err == nil {
		t.Error("rotated-out token should be rejected")
	}

	// The new one works
	if _, err := svc.Refresh(refreshed.RefreshToken, "", ""); err != nil {
		t.Errorf("new refresh token should work, got %v", err)
	}
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc := newAuthService(testDB(t))

	if _, err := svc.Refresh("deadbeef", "", ""); err == nil {
		t.Fatal("unknown refresh token should be rejected")
	}
	if _, err := svc.Refresh("", "", ""); err == nil {
		t.Fatal("empty refresh token should be rejected")
	}
}

func TestAuthService_RevokeRefreshToken(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "admin", "correct-password", "admin")
	svc := newAuthService(db)

	login, err := svc.Login(&LoginRequest{
		Username: "admin",
		Password: "correct-password",
	}, "", "")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.RevokeRefreshToken(login.RefreshToken); err != nil {
		t.Fatalf("RevokeRefreshToken failed: %v", err)
	}

	if _, err := svc.Refresh(login.RefreshToken, "", ""); err == nil {
		t.Error("revoked token should be rejected")
	}
}

func TestAuthService_CreateAdminIfNotExists(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)

	if err := svc.CreateAdminIfNotExists(); err != nil {
		t.Fatalf("CreateAdminIfNotExists failed: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 admin, got %d", count)
	}

	// Second call is a no-op
	if err := svc.CreateAdminIfNotExists(); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count != 1 {
		t.Errorf("expected still 1 admin, got %d", count)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "admin", "old-password", "admin")
	svc := newAuthService(db)

	err := svc.ChangePassword(user.ID, &ChangePasswordRequest{
		OldPassword: "old-password",
		NewPassword: "new-password",
	})
	if err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "old-password"}, "", ""); err == nil {
		t.Error("old password should no longer work")
	}
	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "new-password"}, "", ""); err != nil {
		t.Errorf("new password should work, got %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "admin", "old-password", "admin")
	svc := newAuthService(db)

	err := svc.ChangePassword(user.ID, &ChangePasswordRequest{
		OldPassword: "not-the-old-password",
		NewPassword: "new-password",
	})
	if err == nil {
		t.Fatal("wrong old password should fail")
	}
}
