package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// LivroHandler exposes the book resource under its Portuguese route and
// field names, sharing the service and tables with BookHandler.
type LivroHandler struct {
	bookService service.BookService
}

// NewLivroHandler creates a new livro handler.
func NewLivroHandler(bookService service.BookService) *LivroHandler {
	return &LivroHandler{bookService: bookService}
}

// LivroRequest is the Portuguese book creation payload.
type LivroRequest struct {
	Titulo       string `json:"titulo" validate:"required"`
	Ano          int    `json:"ano" validate:"required"`
	IDRomancista uint   `json:"id_romancista" validate:"required"`
}

// LivroUpdateRequest is a partial book update.
type LivroUpdateRequest struct {
	Titulo       *string `json:"titulo"`
	Ano          *int    `json:"ano"`
	IDRomancista *uint   `json:"id_romancista"`
}

// LivroResponse is the Portuguese book shape.
type LivroResponse struct {
	ID           uint   `json:"id"`
	Titulo       string `json:"titulo"`
	Ano          int    `json:"ano"`
	IDRomancista uint   `json:"id_romancista"`
}

// LivroListResponse wraps a filtered listing.
type LivroListResponse struct {
	Livros []LivroResponse `json:"livros"`
}

func toLivroResponse(book *model.Book) LivroResponse {
	return LivroResponse{
		ID:           book.ID,
		Titulo:       book.Title,
		Ano:          book.Year,
		IDRomancista: book.NovelistID,
	}
}

// Create godoc
// @Summary Register a livro
// @Tags livro
// @Accept json
// @Produce json
// @Param livro body LivroRequest true "Livro payload"
// @Success 201 {object} LivroResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /livro [post]
func (h *LivroHandler) Create(c echo.Context) error {
	var req LivroRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	book, err := h.bookService.Create(c.Request().Context(), req.Titulo, req.Ano, req.IDRomancista)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusCreated, toLivroResponse(book))
}

// Get godoc
// @Summary Get a livro by id
// @Tags livro
// @Produce json
// @Param id path int true "Livro ID"
// @Success 200 {object} LivroResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /livro/{id} [get]
func (h *LivroHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrBookNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	book, err := h.bookService.Get(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toLivroResponse(book))
}

// List godoc
// @Summary List livros filtered by title substring and year
// @Tags livro
// @Produce json
// @Param titulo query string false "Title substring"
// @Param ano query int false "Publication year"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} LivroListResponse
// @Security BearerAuth
// @Router /livro [get]
func (h *LivroHandler) List(c echo.Context) error {
	books, err := h.bookService.List(
		c.Request().Context(),
		c.QueryParam("titulo"),
		queryInt(c, "ano"),
		queryInt(c, "offset"),
		queryLimit(c),
	)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	resp := LivroListResponse{Livros: make([]LivroResponse, 0, len(books))}
	for i := range books {
		resp.Livros = append(resp.Livros, toLivroResponse(&books[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Patch a livro
// @Tags livro
// @Accept json
// @Produce json
// @Param id path int true "Livro ID"
// @Param livro body LivroUpdateRequest true "Fields to update"
// @Success 200 {object} LivroResponse
// @Failure 404 {object} errors.DetailResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /livro/{id} [put]
func (h *LivroHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrBookNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	var req LivroUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	book, err := h.bookService.Update(c.Request().Context(), id, service.BookPatch{
		Title:      req.Titulo,
		Year:       req.Ano,
		NovelistID: req.IDRomancista,
	})
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toLivroResponse(book))
}

// Delete godoc
// @Summary Delete a livro
// @Tags livro
// @Produce json
// @Param id path int true "Livro ID"
// @Success 200 {object} LivroResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /livro/{id} [delete]
func (h *LivroHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrBookNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	book, err := h.bookService.Delete(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toLivroResponse(book))
}
