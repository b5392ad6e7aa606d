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

const novelistCacheTTL = 5 * time.Minute

// NovelistService handles novelist catalog operations. Any authenticated
// user may mutate any novelist; ownership only exists for user records.
type NovelistService interface {
	Create(ctx context.Context, name string) (*model.Novelist, error)
	Get(ctx context.Context, id uint) (*model.Novelist, error)
	List(ctx context.Context, name string, offset, limit int) ([]model.Novelist, error)
	Update(ctx context.Context, id uint, name string) (*model.Novelist, error)
	Delete(ctx context.Context, id uint) (*model.Novelist, error)
}

type novelistService struct {
	novelists repository.NovelistRepository
	cache     *cache.Client
}

// NewNovelistService creates a new novelist service.
func NewNovelistService(novelists repository.NovelistRepository, cache *cache.Client) NovelistService {
	return &novelistService{
		novelists: novelists,
		cache:     cache,
	}
}

func (s *novelistService) cacheKey(id uint) string {
	return fmt.Sprintf("novelist:%d", id)
}

// Create registers a novelist with a unique name.
func (s *novelistService) Create(ctx context.Context, name string) (*model.Novelist, error) {
	if _, err := s.novelists.FindByName(ctx, name); err == nil {
		return nil, apperr.ErrNovelistExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check novelist existence: %w", err)
	}

	novelist := &model.Novelist{Name: name}
	if err := s.novelists.Create(ctx, novelist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrNovelistExists
		}
		return nil, fmt.Errorf("create novelist: %w", err)
	}

	return novelist, nil
}

// Get retrieves a novelist by id with read-through caching.
func (s *novelistService) Get(ctx context.Context, id uint) (*model.Novelist, error) {
	var cached model.Novelist
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	novelist, err := s.novelists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNovelistNotFound
		}
		return nil, fmt.Errorf("find novelist: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), novelist, novelistCacheTTL)

	return novelist, nil
}

// List returns novelists filtered by name substring.
func (s *novelistService) List(ctx context.Context, name string, offset, limit int) ([]model.Novelist, error) {
	return s.novelists.List(ctx, name, offset, limit)
}

// Update renames a novelist, rejecting names already in use by another.
func (s *novelistService) Update(ctx context.Context, id uint, name string) (*model.Novelist, error) {
	novelist, err := s.novelists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNovelistNotFound
		}
		return nil, fmt.Errorf("find novelist: %w", err)
	}

	if existing, err := s.novelists.FindByName(ctx, name); err == nil && existing.ID != id {
		return nil, apperr.ErrNovelistExists
	}

	novelist.Name = name
	if err := s.novelists.Update(ctx, novelist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrNovelistExists
		}
		return nil, fmt.Errorf("update novelist: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))

	return novelist, nil
}

// Delete removes a novelist and, through the FK constraint, their books.
func (s *novelistService) Delete(ctx context.Context, id uint) (*model.Novelist, error) {
	novelist, err := s.novelists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNovelistNotFound
		}
		return nil, fmt.Errorf("find novelist: %w", err)
	}

	if err := s.novelists.Delete(ctx, novelist); err != nil {
		return nil, fmt.Errorf("delete novelist: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))

	return novelist, nil
}
