// internal/domain/user/service_test.go
package user

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/auth"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

func setupUserService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory SQLite gives every pooled connection its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}))

	cfg := &config.Config{}
	cfg.App.Name = "ShoeVerse"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour
	cfg.Security.BcryptCost = bcrypt.MinCost

	return NewService(db, auth.NewJWTManager(cfg), auth.NewPasswordManager(cfg)), db
}

func registerReq() *RegisterRequest {
	return &RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "Str0ng!Passw0rd",
		Phone:    "9876543210",
	}
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	svc, _ := setupUserService(t)

	u, err := svc.Register(registerReq())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.NotEqual(t, "Str0ng!Passw0rd", u.Password)
	assert.Equal(t, "user", u.Role)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	// Same address with different casing is still a duplicate
	req := registerReq()
	req.Email = "ASHA@example.com"
	_, err = svc.Register(req)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(&LoginRequest{Email: "asha@example.com", Password: "Str0ng!Passw0rd"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "asha@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestLoginInactiveUser(t *testing.T) {
	svc, db := setupUserService(t)

	u, err := svc.Register(registerReq())
	require.NoError(t, err)
	require.NoError(t, db.Model(&User{}).Where("id = ?", u.ID).Update("is_active", false).Error)

	_, err = svc.Login(&LoginRequest{Email: "asha@example.com", Password: "Str0ng!Passw0rd"})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestResetPassword(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword("asha@example.com", "N3w!Passw0rd42"))

	_, err = svc.Login(&LoginRequest{Email: "asha@example.com", Password: "Str0ng!Passw0rd"})
	require.Error(t, err)

	resp, err := svc.Login(&LoginRequest{Email: "asha@example.com", Password: "N3w!Passw0rd42"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	svc, _ := setupUserService(t)

	err := svc.ResetPassword("nobody@example.com", "N3w!Passw0rd42")
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestGetByID(t *testing.T) {
	svc, _ := setupUserService(t)

	created, err := svc.Register(registerReq())
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = svc.GetByID(9999)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
