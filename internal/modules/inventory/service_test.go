package inventory

import (
	"context"
	"testing"

	"carsline/internal/domain"
	"carsline/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) Create(ctx context.Context, p *domain.Part) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 12
		p.Active = true
	}
	return args.Error(0)
}

func (m *MockPartRepository) List(ctx context.Context) ([]domain.Part, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Part), args.Error(1)
}

func (m *MockPartRepository) ListPaginated(ctx context.Context, search string, page, pageSize int) ([]domain.Part, int64, error) {
	args := m.Called(ctx, search, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Part), args.Get(1).(int64), args.Error(2)
}

func (m *MockPartRepository) Autocomplete(ctx context.Context, prefix string) ([]domain.Part, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Part), args.Error(1)
}

func (m *MockPartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartRepository) GetByPartNumber(ctx context.Context, number string) (*domain.Part, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (*domain.Part, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	parts := new(MockPartRepository)

	parts.On("GetByPartNumber", mock.Anything, "BRK-3321").Return(nil, gorm.ErrRecordNotFound)
	parts.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(parts)

	p, err := service.Create(context.Background(), CreatePartRequest{
		PartNumber: "BRK-3321",
		Type:       "brake pad",
		Quantity:   8,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), p.ID)
	assert.True(t, p.Active)
	parts.AssertExpectations(t)
}

func TestService_Create_Duplicate(t *testing.T) {
	parts := new(MockPartRepository)

	parts.On("GetByPartNumber", mock.Anything, "BRK-3321").Return(&domain.Part{
		ID: 1, PartNumber: "BRK-3321", Active: true,
	}, nil)

	service := NewService(parts)

	_, err := service.Create(context.Background(), CreatePartRequest{
		PartNumber: "BRK-3321",
		Type:       "brake pad",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
	parts.AssertNotCalled(t, "Create")
}

func TestService_Create_EmptyNumber(t *testing.T) {
	service := NewService(new(MockPartRepository))

	_, err := service.Create(context.Background(), CreatePartRequest{PartNumber: "   ", Type: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Autocomplete_ShortPrefix(t *testing.T) {
	parts := new(MockPartRepository)
	service := NewService(parts)

	out, err := service.Autocomplete(context.Background(), "B")
	assert.NoError(t, err)
	assert.Empty(t, out)
	parts.AssertNotCalled(t, "Autocomplete")
}

func TestService_Autocomplete_Delegates(t *testing.T) {
	parts := new(MockPartRepository)

	parts.On("Autocomplete", mock.Anything, "BRK").Return([]domain.Part{
		{ID: 1, PartNumber: "BRK-3321"},
		{ID: 2, PartNumber: "BRK-4410"},
	}, nil)

	service := NewService(parts)

	out, err := service.Autocomplete(context.Background(), "BRK")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestService_Decrease_Insufficient(t *testing.T) {
	parts := new(MockPartRepository)

	parts.On("AdjustQuantity", mock.Anything, int64(12), -5).
		Return(nil, repository.ErrInsufficientStock)

	service := NewService(parts)

	_, err := service.Decrease(context.Background(), 12, 5)
	assert.ErrorIs(t, err, ErrInsufficient)
}

func TestService_Increase_Success(t *testing.T) {
	parts := new(MockPartRepository)

	parts.On("AdjustQuantity", mock.Anything, int64(12), 3).Return(&domain.Part{
		ID: 12, PartNumber: "BRK-3321", Quantity: 11, Active: true,
	}, nil)

	service := NewService(parts)

	p, err := service.Increase(context.Background(), 12, 3)
	assert.NoError(t, err)
	assert.Equal(t, 11, p.Quantity)
}

func TestService_Delete_NotFound(t *testing.T) {
	parts := new(MockPartRepository)

	parts.On("Deactivate", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	service := NewService(parts)

	err := service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
