package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/cache"
	apperr "github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/repository"
)

const bookCacheTTL = 5 * time.Minute

// BookPatch carries a partial book update. Only non-nil fields are applied.
type BookPatch struct {
	Title      *string
	Year       *int
	NovelistID *uint
}

// BookService handles book catalog operations.
type BookService interface {
	Create(ctx context.Context, title string, year int, novelistID uint) (*model.Book, error)
	Get(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, title string, year, offset, limit int) ([]model.Book, error)
	Update(ctx context.Context, id uint, patch BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id uint) (*model.Book, error)
}

type bookService struct {
	books     repository.BookRepository
	novelists repository.NovelistRepository
	cache     *cache.Client
}

// NewBookService creates a new book service.
func NewBookService(books repository.BookRepository, novelists repository.NovelistRepository, cache *cache.Client) BookService {
	return &bookService{
		books:     books,
		novelists: novelists,
		cache:     cache,
	}
}

func (s *bookService) cacheKey(id uint) string {
	return fmt.Sprintf("book:%d", id)
}

// Create registers a book with a unique title under an existing novelist.
func (s *bookService) Create(ctx context.Context, title string, year int, novelistID uint) (*model.Book, error) {
	if _, err := s.books.FindByTitle(ctx, title); err == nil {
		return nil, apperr.ErrBookExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check book existence: %w", err)
	}

	if _, err := s.novelists.FindByID(ctx, novelistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNovelistNotFound
		}
		return nil, fmt.Errorf("find novelist: %w", err)
	}

	book := &model.Book{
		Title:      title,
		Year:       year,
		NovelistID: novelistID,
	}
	if err := s.books.Create(ctx, book); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrBookExists
		}
		return nil, fmt.Errorf("create book: %w", err)
	}

	return book, nil
}

// Get retrieves a book by id with read-through caching.
func (s *bookService) Get(ctx context.Context, id uint) (*model.Book, error) {
	var cached model.Book
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), book, bookCacheTTL)

	return book, nil
}

// List returns books filtered by title substring and year.
func (s *bookService) List(ctx context.Context, title string, year, offset, limit int) ([]model.Book, error) {
	return s.books.List(ctx, title, year, offset, limit)
}

// Update applies the present patch fields to a book. A new title must not
// already belong to another book, and a new novelist id must exist.
func (s *bookService) Update(ctx context.Context, id uint, patch BookPatch) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	if patch.Title != nil {
		if existing, err := s.books.FindByTitle(ctx, *patch.Title); err == nil && existing.ID != id {
			return nil, apperr.ErrBookExists
		}
		book.Title = *patch.Title
	}
	if patch.Year != nil {
		book.Year = *patch.Year
	}
	if patch.NovelistID != nil {
		if _, err := s.novelists.FindByID(ctx, *patch.NovelistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.ErrNovelistNotFound
			}
			return nil, fmt.Errorf("find novelist: %w", err)
		}
		book.NovelistID = *patch.NovelistID
	}

	if err := s.books.Update(ctx, book); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrBookExists
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))

	return book, nil
}

// Delete removes a book and returns the removed record.
func (s *bookService) Delete(ctx context.Context, id uint) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	if err := s.books.Delete(ctx, book); err != nil {
		return nil, fmt.Errorf("delete book: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))

	return book, nil
}
