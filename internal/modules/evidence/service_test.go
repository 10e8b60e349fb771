package evidence

import (
	"context"
	"io"
	"strings"
	"testing"

	"carsline/internal/domain"
	"carsline/internal/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEvidenceRepository struct {
	mock.Mock
}

func (m *MockEvidenceRepository) CreateBatch(ctx context.Context, items []*domain.Evidence) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockEvidenceRepository) GetByID(ctx context.Context, id int64) (*domain.Evidence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) ListByOrder(ctx context.Context, orderID int64, isWork *bool) ([]domain.Evidence, error) {
	args := m.Called(ctx, orderID, isWork)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func TestService_Attach_Success(t *testing.T) {
	evidenceRepo := new(MockEvidenceRepository)
	orders := new(MockOrderRepository)
	store := newMemStore()

	orders.On("GetByID", mock.Anything, int64(77)).Return(&domain.Order{
		ID: 77, OrderNumber: "SRV-000001", Active: true,
	}, nil)
	evidenceRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	service := NewService(evidenceRepo, orders, store)

	rows, err := service.Attach(context.Background(), 77, domain.EvidenceWork, []Upload{
		{File: strings.NewReader("img1"), Filename: "a.jpg", Description: "scratch on door"},
		{File: strings.NewReader("img2"), Filename: "b.png", Description: "engine bay"},
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, rows[0].IsWork)
	assert.Len(t, store.stored, 2)
	assert.Contains(t, store.stored[0], "SRV-000001/work/")
}

func TestService_Attach_BadCategory(t *testing.T) {
	service := NewService(new(MockEvidenceRepository), new(MockOrderRepository), newMemStore())

	_, err := service.Attach(context.Background(), 77, "selfies", []Upload{
		{File: strings.NewReader("x"), Filename: "a.jpg"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Attach_CleansUpOnDBFailure(t *testing.T) {
	evidenceRepo := new(MockEvidenceRepository)
	orders := new(MockOrderRepository)
	store := newMemStore()

	orders.On("GetByID", mock.Anything, int64(77)).Return(&domain.Order{
		ID: 77, OrderNumber: "SRV-000001", Active: true,
	}, nil)
	evidenceRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(assert.AnError)

	service := NewService(evidenceRepo, orders, store)

	_, err := service.Attach(context.Background(), 77, domain.EvidenceReception, []Upload{
		{File: strings.NewReader("img"), Filename: "a.jpg", Description: "front"},
	})

	assert.Error(t, err)
	assert.Equal(t, store.stored, store.removed)
}

func TestService_Attach_InactiveOrder(t *testing.T) {
	evidenceRepo := new(MockEvidenceRepository)
	orders := new(MockOrderRepository)

	orders.On("GetByID", mock.Anything, int64(77)).Return(&domain.Order{
		ID: 77, OrderNumber: "SRV-000001", Active: false,
	}, nil)

	service := NewService(evidenceRepo, orders, newMemStore())

	_, err := service.Attach(context.Background(), 77, domain.EvidenceWork, []Upload{
		{File: strings.NewReader("img"), Filename: "a.jpg"},
	})
	assert.ErrorIs(t, err, ErrOrderGone)
}

func TestService_Image_FileMissing(t *testing.T) {
	evidenceRepo := new(MockEvidenceRepository)
	store := newMemStore()
	store.missing = true

	evidenceRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Evidence{
		ID: 3, FilePath: "SRV-000001/work/gone.jpg", Active: true,
	}, nil)

	service := NewService(evidenceRepo, new(MockOrderRepository), store)

	_, _, err := service.Image(context.Background(), 3)
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestService_Delete_Purge(t *testing.T) {
	evidenceRepo := new(MockEvidenceRepository)
	store := newMemStore()

	evidenceRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Evidence{
		ID: 3, FilePath: "SRV-000001/work/x.jpg", Active: true,
	}, nil)
	evidenceRepo.On("SoftDelete", mock.Anything, int64(3)).Return(nil)

	service := NewService(evidenceRepo, new(MockOrderRepository), store)

	assert.NoError(t, service.Delete(context.Background(), 3, true))
	assert.Equal(t, []string{"SRV-000001/work/x.jpg"}, store.removed)
}

func TestService_Delete_NotFound(t *testing.T) {
	evidenceRepo := new(MockEvidenceRepository)

	evidenceRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(evidenceRepo, new(MockOrderRepository), newMemStore())

	err := service.Delete(context.Background(), 3, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

// memStore is an in-memory FileStore for tests.
type memStore struct {
	stored  []string
	removed []string
	missing bool
}

func newMemStore() *memStore { return &memStore{} }

func (f *memStore) Store(_ io.Reader, orderNumber, category, description, ext string) (string, error) {
	p := orderNumber + "/" + category + "/" + description + ext
	f.stored = append(f.stored, p)
	return p, nil
}

func (f *memStore) Retrieve(relPath string) ([]byte, error) {
	if f.missing {
		return nil, storage.ErrFileMissing
	}
	return []byte("bytes"), nil
}

func (f *memStore) Remove(relPath string) error {
	f.removed = append(f.removed, relPath)
	return nil
}
