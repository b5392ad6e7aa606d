package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// RomancistaHandler exposes the novelist resource under its Portuguese
// route and field names. It shares the service and tables with
// NovelistHandler; only the JSON shape differs.
type RomancistaHandler struct {
	novelistService service.NovelistService
}

// NewRomancistaHandler creates a new romancista handler.
func NewRomancistaHandler(novelistService service.NovelistService) *RomancistaHandler {
	return &RomancistaHandler{novelistService: novelistService}
}

// RomancistaRequest is the Portuguese novelist payload.
type RomancistaRequest struct {
	Nome string `json:"nome" validate:"required"`
}

// RomancistaResponse is the Portuguese novelist shape.
type RomancistaResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

// RomancistaListResponse wraps a filtered listing.
type RomancistaListResponse struct {
	Romancistas []RomancistaResponse `json:"romancistas"`
}

func toRomancistaResponse(novelist *model.Novelist) RomancistaResponse {
	return RomancistaResponse{ID: novelist.ID, Nome: novelist.Name}
}

// Create godoc
// @Summary Register a romancista
// @Tags romancista
// @Accept json
// @Produce json
// @Param romancista body RomancistaRequest true "Romancista payload"
// @Success 201 {object} RomancistaResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /romancista [post]
func (h *RomancistaHandler) Create(c echo.Context) error {
	var req RomancistaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	novelist, err := h.novelistService.Create(c.Request().Context(), req.Nome)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusCreated, toRomancistaResponse(novelist))
}

// Get godoc
// @Summary Get a romancista by id
// @Tags romancista
// @Produce json
// @Param id path int true "Romancista ID"
// @Success 200 {object} RomancistaResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /romancista/{id} [get]
func (h *RomancistaHandler) Get(c echo.Context) error {
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

	return c.JSON(http.StatusOK, toRomancistaResponse(novelist))
}

// List godoc
// @Summary List romancistas filtered by name substring
// @Tags romancista
// @Produce json
// @Param nome query string false "Name substring"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} RomancistaListResponse
// @Security BearerAuth
// @Router /romancista [get]
func (h *RomancistaHandler) List(c echo.Context) error {
	novelists, err := h.novelistService.List(
		c.Request().Context(),
		c.QueryParam("nome"),
		queryInt(c, "offset"),
		queryLimit(c),
	)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	resp := RomancistaListResponse{Romancistas: make([]RomancistaResponse, 0, len(novelists))}
	for i := range novelists {
		resp.Romancistas = append(resp.Romancistas, toRomancistaResponse(&novelists[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Rename a romancista
// @Tags romancista
// @Accept json
// @Produce json
// @Param id path int true "Romancista ID"
// @Param romancista body RomancistaRequest true "Romancista payload"
// @Success 200 {object} RomancistaResponse
// @Failure 404 {object} errors.DetailResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /romancista/{id} [put]
func (h *RomancistaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrNovelistNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	var req RomancistaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	novelist, err := h.novelistService.Update(c.Request().Context(), id, req.Nome)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toRomancistaResponse(novelist))
}

// Delete godoc
// @Summary Delete a romancista
// @Tags romancista
// @Produce json
// @Param id path int true "Romancista ID"
// @Success 200 {object} RomancistaResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /romancista/{id} [delete]
func (h *RomancistaHandler) Delete(c echo.Context) error {
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

	return c.JSON(http.StatusOK, toRomancistaResponse(novelist))
}
