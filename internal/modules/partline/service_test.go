package partline

import (
	"context"
	"testing"

	"carsline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPartLineRepository struct {
	mock.Mock
}

func (m *MockPartLineRepository) AddBatch(ctx context.Context, jobID, orderID int64, lines []domain.PartLine) error {
	args := m.Called(ctx, jobID, orderID, lines)
	return args.Error(0)
}

func (m *MockPartLineRepository) GetByID(ctx context.Context, id int64) (*domain.PartLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartLine), args.Error(1)
}

func (m *MockPartLineRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.PartLine, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartLine), args.Error(1)
}

func (m *MockPartLineRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.PartLine, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartLine), args.Error(1)
}

func (m *MockPartLineRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func linesRequest() AddLinesRequest {
	return AddLinesRequest{Lines: []LineInput{
		{Name: "Oil filter", Quantity: 1, UnitPrice: 180},
		{Name: "Engine oil 5W-30", Quantity: 4, UnitPrice: 250},
	}}
}

func TestService_Add_Success(t *testing.T) {
	lines := new(MockPartLineRepository)
	jobs := new(MockJobRepository)

	jobs.On("GetByID", mock.Anything, int64(501)).Return(&domain.Job{
		ID: 501, OrderID: 77, Status: domain.JobInProcess, Active: true,
	}, nil)
	lines.On("AddBatch", mock.Anything, int64(501), int64(77), mock.Anything).Return(nil)

	service := NewService(lines, jobs)

	out, err := service.Add(context.Background(), 501, linesRequest())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 1000.0, out[1].Total())
	lines.AssertExpectations(t)
}

func TestService_Add_CompletedJobRejected(t *testing.T) {
	lines := new(MockPartLineRepository)
	jobs := new(MockJobRepository)

	jobs.On("GetByID", mock.Anything, int64(501)).Return(&domain.Job{
		ID: 501, OrderID: 77, Status: domain.JobCompleted, Active: true,
	}, nil)

	service := NewService(lines, jobs)

	_, err := service.Add(context.Background(), 501, linesRequest())
	assert.ErrorIs(t, err, ErrJobClosed)
	lines.AssertNotCalled(t, "AddBatch")
}

func TestService_Add_CancelledJobRejected(t *testing.T) {
	lines := new(MockPartLineRepository)
	jobs := new(MockJobRepository)

	jobs.On("GetByID", mock.Anything, int64(501)).Return(&domain.Job{
		ID: 501, OrderID: 77, Status: domain.JobCancelled, Active: true,
	}, nil)

	service := NewService(lines, jobs)

	_, err := service.Add(context.Background(), 501, linesRequest())
	assert.ErrorIs(t, err, ErrJobClosed)
}

func TestService_Add_UnknownJob(t *testing.T) {
	lines := new(MockPartLineRepository)
	jobs := new(MockJobRepository)

	jobs.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(lines, jobs)

	_, err := service.Add(context.Background(), 404, linesRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_CompletedJobFrozen(t *testing.T) {
	lines := new(MockPartLineRepository)
	jobs := new(MockJobRepository)

	lines.On("GetByID", mock.Anything, int64(9)).Return(&domain.PartLine{
		ID: 9, JobID: 501, OrderID: 77,
	}, nil)
	jobs.On("GetByID", mock.Anything, int64(501)).Return(&domain.Job{
		ID: 501, Status: domain.JobCompleted, Active: true,
	}, nil)

	service := NewService(lines, jobs)

	err := service.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrJobClosed)
	lines.AssertNotCalled(t, "Delete")
}

func TestService_Delete_Success(t *testing.T) {
	lines := new(MockPartLineRepository)
	jobs := new(MockJobRepository)

	lines.On("GetByID", mock.Anything, int64(9)).Return(&domain.PartLine{
		ID: 9, JobID: 501, OrderID: 77,
	}, nil)
	jobs.On("GetByID", mock.Anything, int64(501)).Return(&domain.Job{
		ID: 501, Status: domain.JobInProcess, Active: true,
	}, nil)
	lines.On("Delete", mock.Anything, int64(9)).Return(nil)

	service := NewService(lines, jobs)

	assert.NoError(t, service.Delete(context.Background(), 9))
	lines.AssertExpectations(t)
}
