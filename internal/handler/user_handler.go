package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRequest is the registration/update payload.
type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public account shape; the password hash never leaves
// the server.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// Create godoc
// @Summary Register an account
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserRequest true "Account payload"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.DetailResponse
// @Router /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update godoc
// @Summary Update own account
// @Tags user
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserRequest true "Account payload"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.DetailResponse
// @Failure 403 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	current := CurrentUser(c)
	if current == nil {
		return Unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrNotOwner)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	user, err := h.userService.Update(c.Request().Context(), current, id, req.Username, req.Email, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete godoc
// @Summary Delete own account
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 401 {object} errors.DetailResponse
// @Failure 403 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	current := CurrentUser(c)
	if current == nil {
		return Unauthorized(c)
	}

	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrNotOwner)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	if err := h.userService.Delete(c.Request().Context(), current, id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, errors.MessageResponse{Message: errors.MessageAccountDeleted})
}
