package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/service"
)

// BookHandler handles the English-named book endpoints.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// BookRequest is the book creation payload.
type BookRequest struct {
	Title      string `json:"title" validate:"required"`
	Year       int    `json:"year" validate:"required"`
	NovelistID uint   `json:"novelist_id" validate:"required"`
}

// BookUpdateRequest is a partial book update; absent fields are untouched.
type BookUpdateRequest struct {
	Title      *string `json:"title"`
	Year       *int    `json:"year"`
	NovelistID *uint   `json:"novelist_id"`
}

// BookResponse is the public book shape.
type BookResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	NovelistID uint   `json:"novelist_id"`
}

// BookListResponse wraps a filtered book listing.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

func toBookResponse(book *model.Book) BookResponse {
	return BookResponse{
		ID:         book.ID,
		Title:      book.Title,
		Year:       book.Year,
		NovelistID: book.NovelistID,
	}
}

// Create godoc
// @Summary Register a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body BookRequest true "Book payload"
// @Success 201 {object} BookResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	book, err := h.bookService.Create(c.Request().Context(), req.Title, req.Year, req.NovelistID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusCreated, toBookResponse(book))
}

// Get godoc
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} BookResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
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

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// List godoc
// @Summary List books filtered by title substring and year
// @Tags books
// @Produce json
// @Param title query string false "Title substring"
// @Param year query int false "Publication year"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} BookListResponse
// @Security BearerAuth
// @Router /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.bookService.List(
		c.Request().Context(),
		c.QueryParam("title"),
		queryInt(c, "year"),
		queryInt(c, "offset"),
		queryLimit(c),
	)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	resp := BookListResponse{Books: make([]BookResponse, 0, len(books))}
	for i := range books {
		resp.Books = append(resp.Books, toBookResponse(&books[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Patch a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body BookUpdateRequest true "Fields to update"
// @Success 200 {object} BookResponse
// @Failure 404 {object} errors.DetailResponse
// @Failure 409 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		he := errors.MapErrorToHTTP(errors.ErrBookNotFound)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	var req BookUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.DetailResponse{Detail: err.Error()})
	}

	book, err := h.bookService.Update(c.Request().Context(), id, service.BookPatch{
		Title:      req.Title,
		Year:       req.Year,
		NovelistID: req.NovelistID,
	})
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToDetail())
	}

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Delete godoc
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} BookResponse
// @Failure 404 {object} errors.DetailResponse
// @Security BearerAuth
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
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

	return c.JSON(http.StatusOK, toBookResponse(book))
}
