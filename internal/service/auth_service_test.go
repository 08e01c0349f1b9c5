package service

import (
	"testing"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin", model.RoleAdmin)
	svc := NewAuthService(repository.NewUserRepo(db))

	resp, err := svc.Login("admin", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin", model.RoleAdmin)
	svc := NewAuthService(repository.NewUserRepo(db))

	var appErr *apperr.Error

	_, err := svc.Login("admin", "wrong")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindUnauthenticated, appErr.Kind)

	// Unknown user gets the same answer
	_, err = svc.Login("ghost", "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindUnauthenticated, appErr.Kind)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "staff1", model.RoleStaff)
	svc := NewAuthService(repository.NewUserRepo(db))

	err := svc.ChangePassword(user.ID, "wrong", "newsecret")

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)
	assert.Equal(t, "Current password is incorrect", appErr.Message)

	// Password unchanged
	var got model.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.True(t, got.CheckPassword("secret123"))
}

func TestChangePasswordSuccess(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "staff1", model.RoleStaff)
	svc := NewAuthService(repository.NewUserRepo(db))

	require.NoError(t, svc.ChangePassword(user.ID, "secret123", "newsecret"))

	var got model.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.True(t, got.CheckPassword("newsecret"))
	assert.False(t, got.CheckPassword("secret123"))
}

func TestChangePasswordTooShort(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "staff1", model.RoleStaff)
	svc := NewAuthService(repository.NewUserRepo(db))

	err := svc.ChangePassword(user.ID, "secret123", "abc")

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)
}
