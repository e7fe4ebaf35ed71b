package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tiffinbox/internal/models/request_models"
	"tiffinbox/internal/services"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/utils"
)

const (
	accessCookieMaxAge  = 15 * 60
	refreshCookieMaxAge = 30 * 24 * 60 * 60
)

type AccountController struct {
	accountService services.AccountService
}

func NewAccountController(accountService services.AccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tokens, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	utils.RespondSuccess(c, tokens, "Login successful")
}

// Refresh godoc
// @Summary Exchange the refresh token for a new token pair
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh [post]
func (a *AccountController) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		// Mobile clients send the token in the body instead of a cookie.
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Refresh token missing")
			return
		}
		refresh = body.RefreshToken
	}

	tokens, err := a.accountService.Refresh(c.Request.Context(), refresh)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	utils.RespondSuccess(c, tokens, "Token refreshed")
}

// Logout godoc
// @Summary Logout and revoke the refresh token
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	a.accountService.Logout(c.Request.Context(), middleware.UserID(c))

	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out")
}

// ListUsers godoc
// @Summary List all users
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (a *AccountController) ListUsers(c *gin.Context) {
	users, err := a.accountService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

func (a *AccountController) setAuthCookies(c *gin.Context, access, refresh string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", access, accessCookieMaxAge, "/", "", false, true)
	c.SetCookie("refresh_token", refresh, refreshCookieMaxAge, "/", "", false, true)
}
