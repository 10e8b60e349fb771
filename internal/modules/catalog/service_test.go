package catalog

import (
	"context"
	"testing"

	"carsline/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 11
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchByName(ctx context.Context, name string, limit int) ([]domain.Customer, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	if args.Error(0) == nil {
		v.ID = 21
	}
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Vehicle, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) Create(ctx context.Context, st *domain.ServiceType) error {
	args := m.Called(ctx, st)
	if args.Error(0) == nil {
		st.ID = 3
	}
	return args.Error(0)
}

func (m *MockServiceTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) List(ctx context.Context) ([]domain.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceType), args.Error(1)
}

func newTestService() (*Service, *MockCustomerRepository, *MockVehicleRepository, *MockServiceTypeRepository) {
	customers := new(MockCustomerRepository)
	vehicles := new(MockVehicleRepository)
	serviceTypes := new(MockServiceTypeRepository)
	return NewService(customers, vehicles, serviceTypes), customers, vehicles, serviceTypes
}

func customerRequest() CustomerRequest {
	return CustomerRequest{
		FullName:    "Laura Espinoza",
		TaxID:       "EISL850101AA1",
		MobilePhone: "5551234567",
		Email:       "laura@example.com",
	}
}

func TestService_CreateCustomer_Success(t *testing.T) {
	service, customers, _, _ := newTestService()

	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	c, err := service.CreateCustomer(context.Background(), customerRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(11), c.ID)
	assert.True(t, c.Active)
	assert.Equal(t, "Laura Espinoza", c.FullName)
}

func TestService_UpdateCustomer_NotFound(t *testing.T) {
	service, customers, _, _ := newTestService()

	customers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.UpdateCustomer(context.Background(), 404, customerRequest())

	assert.ErrorIs(t, err, ErrNotFound)
	customers.AssertNotCalled(t, "Update")
}

func TestService_DeleteCustomer_Success(t *testing.T) {
	service, customers, _, _ := newTestService()

	customers.On("GetByID", mock.Anything, int64(11)).Return(&domain.Customer{ID: 11, Active: true}, nil)
	customers.On("Deactivate", mock.Anything, int64(11)).Return(nil)

	err := service.DeleteCustomer(context.Background(), 11)

	assert.NoError(t, err)
	customers.AssertExpectations(t)
}

func TestService_CreateVehicle_Success(t *testing.T) {
	service, customers, vehicles, _ := newTestService()

	customers.On("GetByID", mock.Anything, int64(11)).Return(&domain.Customer{ID: 11, Active: true}, nil)
	vehicles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

	v, err := service.CreateVehicle(context.Background(), VehicleRequest{
		CustomerID: 11,
		VIN:        " 1hgcm82633a004352 ",
		Make:       "Honda",
		Model:      "Accord",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(21), v.ID)
	assert.Equal(t, "1HGCM82633A004352", v.VIN)
	assert.True(t, v.Active)
}

func TestService_CreateVehicle_UnknownCustomer(t *testing.T) {
	service, customers, vehicles, _ := newTestService()

	customers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateVehicle(context.Background(), VehicleRequest{CustomerID: 404, VIN: "ABC123"})

	assert.ErrorIs(t, err, ErrValidation)
	vehicles.AssertNotCalled(t, "Create")
}

func TestService_CreateVehicle_DuplicateVIN(t *testing.T) {
	service, customers, vehicles, _ := newTestService()

	customers.On("GetByID", mock.Anything, int64(11)).Return(&domain.Customer{ID: 11, Active: true}, nil)
	vehicles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_vehicles_vin"})

	_, err := service.CreateVehicle(context.Background(), VehicleRequest{CustomerID: 11, VIN: "ABC123"})

	assert.ErrorIs(t, err, ErrDuplicateVIN)
}

func TestService_CustomerVehicles(t *testing.T) {
	service, customers, vehicles, _ := newTestService()

	customers.On("GetByID", mock.Anything, int64(11)).Return(&domain.Customer{ID: 11, Active: true}, nil)
	vehicles.On("ListByCustomer", mock.Anything, int64(11)).Return([]domain.Vehicle{
		{ID: 21, CustomerID: 11, VIN: "AAA"},
		{ID: 22, CustomerID: 11, VIN: "BBB"},
	}, nil)

	list, err := service.CustomerVehicles(context.Background(), 11)

	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_ListCustomers_ClampsLimit(t *testing.T) {
	service, customers, _, _ := newTestService()

	customers.On("List", mock.Anything, 20, 0).Return([]domain.Customer{}, nil)

	_, err := service.ListCustomers(context.Background(), 500, -3)

	assert.NoError(t, err)
	customers.AssertExpectations(t)
}

func TestService_SearchCustomers(t *testing.T) {
	service, customers, _, _ := newTestService()

	customers.On("SearchByName", mock.Anything, "laura", 20).Return([]domain.Customer{
		{ID: 11, FullName: "Laura Espinoza"},
	}, nil)

	list, err := service.SearchCustomers(context.Background(), " laura ", 0)

	assert.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Laura Espinoza", list[0].FullName)
}

func TestService_SearchCustomers_BlankTerm(t *testing.T) {
	service, customers, _, _ := newTestService()

	_, err := service.SearchCustomers(context.Background(), "   ", 10)

	assert.ErrorIs(t, err, ErrValidation)
	customers.AssertNotCalled(t, "SearchByName")
}

func TestService_CreateServiceType(t *testing.T) {
	service, _, _, serviceTypes := newTestService()

	serviceTypes.On("Create", mock.Anything, mock.AnythingOfType("*domain.ServiceType")).Return(nil)

	st, err := service.CreateServiceType(context.Background(), ServiceTypeRequest{Name: "Major service", BasePrice: 3500})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), st.ID)
	assert.True(t, st.Active)
}
