package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// NovelistHandler handles the English-named novelist endpoints.
type NovelistHandler struct {
	novelistService service.NovelistService
}

// NewNovelistHandler creates a new novelist handler.
func NewNovelistHandler(novelistService service.NovelistService) *NovelistHandler {
	return &NovelistHandler{novelistService: novelistService}
}

// NovelistRequest is the novelist payload.
type NovelistRequest struct {
	Name string `json:"name" validate:"required"`
}

// NovelistResponse is the public novelist shape.
type NovelistResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NovelistListResponse wraps a filtered novelist listing.
type NovelistListResponse struct {
	Novelists []NovelistResponse `json:"novelists"`
}

func toNovelistResponse(novelist *model.Novelist) NovelistResponse {
	return NovelistResponse{ID: novelist.ID, Name: novelist.Name}
}

// Create godoc
// @Summary Register a novelist
// @Tags novelists
// @Accept json
// @Produce json
// @Param novelist body NovelistRequest true "Novelist payload"
// @Success 201 {object} NovelistResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /novelists [post]
func (h *NovelistHandler) Create(c echo.Context) error {
	var req NovelistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	novelist, err := h.novelistService.Create(c.Request().Context(), req.Name)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusCreated, toNovelistResponse(novelist))
}

// Get godoc
// @Summary Get a novelist by id
// @Tags novelists
// @Produce json
// @Param id path int true "Novelist ID"
// @Success 200 {object} NovelistResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /novelists/{id} [get]
func (h *NovelistHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrNovelistNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	novelist, err := h.novelistService.Get(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toNovelistResponse(novelist))
}

// List godoc
// @Summary List novelists filtered by name substring
// @Tags novelists
// @Produce json
// @Param name query string false "Name substring"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} NovelistListResponse
// @Security BearerAuth
// @Router /novelists [get]
func (h *NovelistHandler) List(c echo.Context) error {
	novelists, err := h.novelistService.List(
		c.Request().Context(),
		c.QueryParam("name"),
		queryInt(c, "offset"),
		queryLimit(c),
	)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	resp := NovelistListResponse{Novelists: make([]NovelistResponse, 0, len(novelists))}
	for i := range novelists {
		resp.Novelists = append(resp.Novelists, toNovelistResponse(&novelists[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Rename a novelist
// @Tags novelists
// @Accept json
// @Produce json
// @Param id path int true "Novelist ID"
// @Param novelist body NovelistRequest true "Novelist payload"
// @Success 200 {object} NovelistResponse
// @Failure 404 {object} errors.DetailResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /novelists/{id} [put]
func (h *NovelistHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrNovelistNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	var req NovelistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	novelist, err := h.novelistService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toNovelistResponse(novelist))
}

// Delete godoc
// @Summary Delete a novelist
// @Tags novelists
// @Produce json
// @Param id path int true "Novelist ID"
// @Success 200 {object} NovelistResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /novelists/{id} [delete]
func (h *NovelistHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrNovelistNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	novelist, err := h.novelistService.Delete(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toNovelistResponse(novelist))
}
