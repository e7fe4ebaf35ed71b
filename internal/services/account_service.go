package services

import (
	"context"
	"fmt"

	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	resp "tiffinbox/internal/models/response_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/memcache"
	"tiffinbox/pkg/utils"
)

type AccountService interface {
	Register(ctx context.Context, request req.SignUpRequest) error
	Login(ctx context.Context, request req.LoginRequest) (*resp.LoginResponse, error)

	// Refresh exchanges a valid refresh token for a fresh token pair,
	// rotating the stored slot.
	Refresh(ctx context.Context, refreshToken string) (*resp.LoginResponse, error)

	Logout(ctx context.Context, userID uint)
	ListAll(ctx context.Context) ([]dbm.User, error)
}

type accountService struct {
	users  repositories.UserRepository
	tokens memcache.RefreshTokenStore
}

func NewAccountService(users repositories.UserRepository, tokens memcache.RefreshTokenStore) AccountService {
	return &accountService{users: users, tokens: tokens}
}

func (a *accountService) Register(ctx context.Context, request req.SignUpRequest) error {
	existing, err := a.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	user := &dbm.User{
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashed,
		Role:         dbm.RoleUser,
	}
	if err := a.users.Insert(ctx, user); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (a *accountService) Login(ctx context.Context, request req.LoginRequest) (*resp.LoginResponse, error) {
	user, err := a.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueTokens(user)
}

func (a *accountService) Refresh(ctx context.Context, refreshToken string) (*resp.LoginResponse, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil || claims.Kind != "refresh" {
		return nil, utils.ErrUnauthenticated
	}

	// Single slot per user: a token issued before the latest login or
	// refresh no longer matches and is rejected.
	if a.tokens.Get(claims.UserID) != refreshToken {
		return nil, utils.ErrUnauthenticated
	}

	user, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrUnauthenticated
	}

	return a.issueTokens(user)
}

func (a *accountService) issueTokens(user *dbm.User) (*resp.LoginResponse, error) {
	access, err := utils.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	refresh, err := utils.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Overwrites any previous slot; logging in on a second device evicts
	// the first device's refresh token.
	a.tokens.Set(user.ID, refresh, utils.RefreshTokenTTL)

	return &resp.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.ID,
		Name:         user.Name,
		Role:         user.Role,
	}, nil
}

func (a *accountService) Logout(ctx context.Context, userID uint) {
	a.tokens.Delete(userID)
}

func (a *accountService) ListAll(ctx context.Context) ([]dbm.User, error) {
	users, err := a.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return users, nil
}
