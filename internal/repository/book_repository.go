package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/model"
)

// BookRepository defines book persistence operations.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	FindByTitle(ctx context.Context, title string) (*model.Book, error)
	List(ctx context.Context, title string, year, offset, limit int) ([]model.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository builds a GORM-backed repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

func (r *bookRepository) Delete(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Delete(book).Error
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns books filtered by title substring and exact year. Zero values
// leave the corresponding filter off.
func (r *bookRepository) List(ctx context.Context, title string, year, offset, limit int) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})
	if title != "" {
		q = q.Where("title LIKE ?", "%"+title+"%")
	}
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var books []model.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
