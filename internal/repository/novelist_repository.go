package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/model"
)

// NovelistRepository defines novelist persistence operations.
type NovelistRepository interface {
	Create(ctx context.Context, novelist *model.Novelist) error
	Update(ctx context.Context, novelist *model.Novelist) error
	Delete(ctx context.Context, novelist *model.Novelist) error
	FindByID(ctx context.Context, id uint) (*model.Novelist, error)
	FindByName(ctx context.Context, name string) (*model.Novelist, error)
	List(ctx context.Context, name string, offset, limit int) ([]model.Novelist, error)
}

type novelistRepository struct {
	db *gorm.DB
}

// NewNovelistRepository builds a GORM-backed repository.
func NewNovelistRepository(db *gorm.DB) NovelistRepository {
	return &novelistRepository{db: db}
}

func (r *novelistRepository) Create(ctx context.Context, novelist *model.Novelist) error {
	return r.db.WithContext(ctx).Create(novelist).Error
}

func (r *novelistRepository) Update(ctx context.Context, novelist *model.Novelist) error {
	return r.db.WithContext(ctx).Save(novelist).Error
}

func (r *novelistRepository) Delete(ctx context.Context, novelist *model.Novelist) error {
	return r.db.WithContext(ctx).Select("Books").Delete(novelist).Error
}

func (r *novelistRepository) FindByID(ctx context.Context, id uint) (*model.Novelist, error) {
	var novelist model.Novelist
	if err := r.db.WithContext(ctx).First(&novelist, id).Error; err != nil {
		return nil, err
	}
	return &novelist, nil
}

func (r *novelistRepository) FindByName(ctx context.Context, name string) (*model.Novelist, error) {
	var novelist model.Novelist
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&novelist).Error; err != nil {
		return nil, err
	}
	return &novelist, nil
}

// List returns novelists whose name contains the given substring. A zero
// limit means no limit.
func (r *novelistRepository) List(ctx context.Context, name string, offset, limit int) ([]model.Novelist, error) {
	q := r.db.WithContext(ctx).Model(&model.Novelist{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var novelists []model.Novelist
	if err := q.Find(&novelists).Error; err != nil {
		return nil, err
	}
	return novelists, nil
}
