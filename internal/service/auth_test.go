package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (*AuthService, *memUserRepo, *memProfileRepo, *TokenService) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	posts := newMemPostRepo()
	tokens := NewTokenService("test-secret", 100)
	return NewAuthService(users, profiles, posts, tokens), users, profiles, tokens
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _, tokens := newTestAuthService()
	ctx := context.Background()

	token, err := svc.Register(ctx, "A", "a@x.com", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Token 里的用户 ID 要指向刚注册的用户
	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	user, err := svc.CurrentUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "a@x.com", user.Email)

	// 密码必须是 bcrypt 散列，不能存明文
	stored, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))

	// 头像由邮箱确定性生成
	assert.Contains(t, stored.Avatar, "gravatar.com/avatar/")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "123456")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "B", "a@x.com", "654321")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _, tokens := newTestAuthService()
	ctx := context.Background()

	regToken, err := svc.Register(ctx, "A", "a@x.com", "123456")
	require.NoError(t, err)
	registeredID, err := tokens.Verify(regToken)
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		token, err := svc.Login(ctx, "a@x.com", "123456")
		require.NoError(t, err)
		loginID, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, registeredID, loginID)
	})

	t.Run("wrong password", func(t *testing.T) {
		token, err := svc.Login(ctx, "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@x.com", "123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_DeleteAccount_Cascades(t *testing.T) {
	svc, users, profiles, tokens := newTestAuthService()
	profileSvc := NewProfileService(profiles, users)
	ctx := context.Background()

	token, err := svc.Register(ctx, "A", "a@x.com", "123456")
	require.NoError(t, err)
	userID, err := tokens.Verify(token)
	require.NoError(t, err)

	status := "Developer"
	skills := "Go,MongoDB"
	_, err = profileSvc.Upsert(ctx, userID, ProfileInput{Status: &status, Skills: &skills})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, userID))

	_, err = svc.CurrentUser(ctx, userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = profileSvc.ByUserID(ctx, userID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
