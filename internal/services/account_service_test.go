package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	req "tiffinbox/internal/models/request_models"
	"tiffinbox/pkg/memcache"
	"tiffinbox/pkg/utils"
)

func newAccountService(f *fixtures) AccountService {
	return NewAccountService(f.users, memcache.NewRefreshTokens())
}

func registerAndLogin(t *testing.T, svc AccountService) *loginResult {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, req.SignUpRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "supersecret",
	}))

	out, err := svc.Login(ctx, req.LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	return &loginResult{userID: out.UserID, access: out.AccessToken, refresh: out.RefreshToken}
}

type loginResult struct {
	userID  uint
	access  string
	refresh string
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAccountService(newFixtures())
	ctx := context.Background()

	signup := req.SignUpRequest{Name: "Asha", Email: "asha@example.com", Password: "supersecret"}
	require.NoError(t, svc.Register(ctx, signup))
	assert.ErrorIs(t, svc.Register(ctx, signup), utils.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAccountService(newFixtures())
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, req.SignUpRequest{
		Name: "Asha", Email: "asha@example.com", Password: "supersecret",
	}))

	_, err := svc.Login(ctx, req.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, req.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRefreshRotatesSingleSlot(t *testing.T) {
	svc := newAccountService(newFixtures())
	ctx := context.Background()

	session := registerAndLogin(t, svc)

	rotated, err := svc.Refresh(ctx, session.refresh)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.RefreshToken)
	assert.NotEqual(t, session.refresh, rotated.RefreshToken)

	// The pre-rotation token no longer matches the slot.
	_, err = svc.Refresh(ctx, session.refresh)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	// The rotated one does.
	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newAccountService(newFixtures())
	session := registerAndLogin(t, svc)

	_, err := svc.Refresh(context.Background(), session.access)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestLogoutClearsSlot(t *testing.T) {
	svc := newAccountService(newFixtures())
	ctx := context.Background()

	session := registerAndLogin(t, svc)
	svc.Logout(ctx, session.userID)

	_, err := svc.Refresh(ctx, session.refresh)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestSecondLoginEvictsFirstRefreshToken(t *testing.T) {
	svc := newAccountService(newFixtures())
	ctx := context.Background()

	first := registerAndLogin(t, svc)

	second, err := svc.Login(ctx, req.LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, first.refresh)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.Refresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}
