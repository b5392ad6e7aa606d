package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// AuthHandler handles token issuance endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest is the OAuth2-style form login payload; username carries the
// email.
type TokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse is the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token godoc
// @Summary Issue an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Registered email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.DetailResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: errors.DetailInvalidCredentials})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: errors.DetailInvalidCredentials})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// RefreshToken godoc
// @Summary Issue a fresh token from a still-valid one
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.DetailResponse
// @Router /auth/refresh_token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return Unauthorized(c)
	}

	token, err := h.authService.Refresh(c.Request().Context(), user)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
