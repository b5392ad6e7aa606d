package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/cache"
	apperr "github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
)

// MockNovelistRepository is a mock implementation of NovelistRepository.
type MockNovelistRepository struct {
	mock.Mock
}

func (m *MockNovelistRepository) Create(ctx context.Context, novelist *model.Novelist) error {
	args := m.Called(ctx, novelist)
	return args.Error(0)
}

func (m *MockNovelistRepository) Update(ctx context.Context, novelist *model.Novelist) error {
	args := m.Called(ctx, novelist)
	return args.Error(0)
}

func (m *MockNovelistRepository) Delete(ctx context.Context, novelist *model.Novelist) error {
	args := m.Called(ctx, novelist)
	return args.Error(0)
}

func (m *MockNovelistRepository) FindByID(ctx context.Context, id uint) (*model.Novelist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Novelist), args.Error(1)
}

func (m *MockNovelistRepository) FindByName(ctx context.Context, name string) (*model.Novelist, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Novelist), args.Error(1)
}

func (m *MockNovelistRepository) List(ctx context.Context, name string, offset, limit int) ([]model.Novelist, error) {
	args := m.Called(ctx, name, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Novelist), args.Error(1)
}

// noCache is a nil fail-safe cache client; every operation is a no-op.
var noCache *cache.Client

func TestNovelistService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByName", mock.Anything, "Clarice Lispector").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Novelist")).Return(nil)

		svc := NewNovelistService(mockRepo, noCache)
		novelist, err := svc.Create(context.Background(), "Clarice Lispector")

		assert.NoError(t, err)
		assert.Equal(t, "Clarice Lispector", novelist.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByName", mock.Anything, "Clarice Lispector").
			Return(&model.Novelist{ID: 1, Name: "Clarice Lispector"}, nil)

		svc := NewNovelistService(mockRepo, noCache)
		novelist, err := svc.Create(context.Background(), "Clarice Lispector")

		assert.ErrorIs(t, err, apperr.ErrNovelistExists)
		assert.Nil(t, novelist)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("lost insert race", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByName", mock.Anything, "Clarice Lispector").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Novelist")).Return(gorm.ErrDuplicatedKey)

		svc := NewNovelistService(mockRepo, noCache)
		_, err := svc.Create(context.Background(), "Clarice Lispector")

		assert.ErrorIs(t, err, apperr.ErrNovelistExists)
	})
}

func TestNovelistService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Novelist{ID: 1, Name: "Clarice Lispector"}, nil)

		svc := NewNovelistService(mockRepo, noCache)
		novelist, err := svc.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), novelist.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNovelistService(mockRepo, noCache)
		novelist, err := svc.Get(context.Background(), 1)

		assert.ErrorIs(t, err, apperr.ErrNovelistNotFound)
		assert.Nil(t, novelist)
	})
}

func TestNovelistService_Update(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Novelist{ID: 1, Name: "old name"}, nil)
		mockRepo.On("FindByName", mock.Anything, "alice updated").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Novelist")).Return(nil)

		svc := NewNovelistService(mockRepo, noCache)
		novelist, err := svc.Update(context.Background(), 1, "alice updated")

		assert.NoError(t, err)
		assert.Equal(t, "alice updated", novelist.Name)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.Novelist{ID: 1, Name: "old name"}, nil)
		mockRepo.On("FindByName", mock.Anything, "taken").
			Return(&model.Novelist{ID: 2, Name: "taken"}, nil)

		svc := NewNovelistService(mockRepo, noCache)
		_, err := svc.Update(context.Background(), 1, "taken")

		assert.ErrorIs(t, err, apperr.ErrNovelistExists)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing id", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNovelistService(mockRepo, noCache)
		_, err := svc.Update(context.Background(), 1, "whatever")

		assert.ErrorIs(t, err, apperr.ErrNovelistNotFound)
	})
}

func TestNovelistService_Delete(t *testing.T) {
	t.Run("returns removed record", func(t *testing.T) {
		existing := &model.Novelist{ID: 1, Name: "Clarice Lispector"}
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, existing).Return(nil)

		svc := NewNovelistService(mockRepo, noCache)
		novelist, err := svc.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, existing, novelist)
	})

	t.Run("missing id", func(t *testing.T) {
		mockRepo := new(MockNovelistRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewNovelistService(mockRepo, noCache)
		_, err := svc.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, apperr.ErrNovelistNotFound)
	})
}
