package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carsline/internal/database"
	"carsline/internal/domain"
	"carsline/internal/middleware"
	"carsline/internal/modules/catalog"
	"carsline/internal/modules/checklist"
	"carsline/internal/modules/history"
	"carsline/internal/modules/inventory"
	"carsline/internal/modules/job"
	"carsline/internal/modules/order"
	"carsline/internal/modules/partline"
	"carsline/internal/modules/search"
	"carsline/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB

	advisorID    int64
	foremanID    int64
	technicianID int64
	customerID   int64
	vehicleID    int64
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
	Message string                 `json:"message,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db), "Failed to migrate test database")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	serviceTypeRepo := repository.NewServiceTypeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	jobRepo := repository.NewJobRepository(db)
	partLineRepo := repository.NewPartLineRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	partRepo := repository.NewPartRepository(db)

	for _, r := range []domain.Role{
		{ID: domain.RoleAdmin, Name: "admin"},
		{ID: domain.RoleAdvisor, Name: "advisor"},
		{ID: domain.RoleReceptionist, Name: "receptionist"},
		{ID: domain.RoleForeman, Name: "foreman"},
		{ID: domain.RoleTechnician, Name: "technician"},
	} {
		role := r
		require.NoError(t, userRepo.CreateRole(ctx, &role))
	}

	advisor := &domain.User{FullName: "Carlos Mendoza", Username: "cmendoza", RoleID: domain.RoleAdvisor, Active: true}
	foreman := &domain.User{FullName: "Miguel Herrera", Username: "mherrera", RoleID: domain.RoleForeman, Active: true}
	technician := &domain.User{FullName: "Jorge Ramirez", Username: "jramirez", RoleID: domain.RoleTechnician, Active: true}
	for _, u := range []*domain.User{advisor, foreman, technician} {
		require.NoError(t, userRepo.Create(ctx, u))
	}

	customer := &domain.Customer{FullName: "Laura Espinoza", TaxID: "EISL850101AA1", MobilePhone: "5551234567", Active: true}
	require.NoError(t, customerRepo.Create(ctx, customer))

	year := 2019
	vehicle := &domain.Vehicle{CustomerID: customer.ID, VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord", Year: &year, Active: true}
	require.NoError(t, vehicleRepo.Create(ctx, vehicle))

	orderHandler := order.NewHandler(order.NewService(orderRepo, customerRepo, vehicleRepo))
	jobHandler := job.NewHandler(job.NewService(jobRepo, orderRepo, userRepo))
	partLineHandler := partline.NewHandler(partline.NewService(partLineRepo, jobRepo))
	checklistHandler := checklist.NewHandler(checklist.NewService(checklistRepo, jobRepo))
	inventoryHandler := inventory.NewHandler(inventory.NewService(partRepo))
	searchHandler := search.NewHandler(search.NewService(orderRepo, vehicleRepo, customerRepo))
	historyHandler := history.NewHandler(history.NewService(orderRepo, vehicleRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(customerRepo, vehicleRepo, serviceTypeRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Identity(userRepo))
	{
		orderHandler.RegisterRoutes(v1)
		jobHandler.RegisterRoutes(v1)
		partLineHandler.RegisterRoutes(v1)
		checklistHandler.RegisterRoutes(v1)
		inventoryHandler.RegisterRoutes(v1)
		searchHandler.RegisterRoutes(v1)
		historyHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
	}

	return &E2ETestSuite{
		router:       r,
		db:           db,
		advisorID:    advisor.ID,
		foremanID:    foreman.ID,
		technicianID: technician.ID,
		customerID:   customer.ID,
		vehicleID:    vehicle.ID,
	}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body interface{}, userID int64) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set("X-User-Id", fmt.Sprintf("%d", userID))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	return &resp
}

func orderFromResponse(t *testing.T, resp *TestResponse) map[string]interface{} {
	o, ok := resp.Data["order"].(map[string]interface{})
	require.True(t, ok, "response has no order object")
	return o
}

// =============================================================================
// Flow 1: full order lifecycle, creation through delivery
// =============================================================================

func TestFlow1_OrderLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	var orderID float64
	var jobIDs []float64

	t.Run("POST /orders creates SRV order with two jobs", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"type_id":           domain.OrderTypeService,
			"customer_id":       suite.customerID,
			"vehicle_id":        suite.vehicleID,
			"current_km":        52000,
			"promised_delivery": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
			"jobs": []map[string]interface{}{
				{"description": "Oil and filter change"},
				{"description": "Brake inspection", "instructions": "Check pad thickness front and rear"},
			},
		}

		w := suite.makeRequest(t, "POST", "/api/v1/orders", reqBody, suite.advisorID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := parseResponse(t, w)
		require.True(t, resp.Success)

		o := orderFromResponse(t, resp)
		assert.Equal(t, "SRV-000001", o["order_number"])
		assert.Equal(t, float64(2), o["total_jobs"])
		assert.Equal(t, float64(0), o["progress"])
		assert.Equal(t, float64(domain.OrderPending), o["status"])
		orderID = o["id"].(float64)
	})

	t.Run("GET /orders/:id returns detail with jobs", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/orders/%.0f", orderID), nil, suite.advisorID)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		o := orderFromResponse(t, resp)

		jobs, ok := o["jobs"].([]interface{})
		require.True(t, ok)
		require.Len(t, jobs, 2)
		for _, j := range jobs {
			jobIDs = append(jobIDs, j.(map[string]interface{})["id"].(float64))
		}
	})

	t.Run("foreman assigns both jobs", func(t *testing.T) {
		for _, id := range jobIDs {
			w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/assign", id),
				map[string]interface{}{"technician_id": suite.technicianID}, suite.foremanID)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	})

	t.Run("technician starts the first job, order moves in process", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/start", jobIDs[0]), nil, suite.technicianID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/orders/%.0f", orderID), nil, suite.advisorID)
		o := orderFromResponse(t, parseResponse(t, w))
		assert.Equal(t, float64(domain.OrderInProcess), o["status"])
	})

	t.Run("completing the first job sets progress to 50", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/complete", jobIDs[0]),
			map[string]interface{}{"comments": "Oil changed, filter replaced"}, suite.technicianID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/orders/%.0f", orderID), nil, suite.advisorID)
		o := orderFromResponse(t, parseResponse(t, w))
		assert.Equal(t, float64(1), o["completed_jobs"])
		assert.Equal(t, float64(50), o["progress"])
		assert.Equal(t, float64(domain.OrderInProcess), o["status"])
	})

	t.Run("deliver is rejected while a job is outstanding", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/orders/%.0f/deliver", orderID), nil, suite.advisorID)
		require.NotEqual(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "JOBS_OUTSTANDING", resp.Error.Code)
	})

	t.Run("completing the second job finishes the order", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/start", jobIDs[1]), nil, suite.technicianID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/complete", jobIDs[1]),
			map[string]interface{}{"comments": "Pads within spec"}, suite.technicianID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/orders/%.0f", orderID), nil, suite.advisorID)
		o := orderFromResponse(t, parseResponse(t, w))
		assert.Equal(t, float64(100), o["progress"])
		assert.Equal(t, float64(domain.OrderFinished), o["status"])
	})

	t.Run("deliver succeeds once all jobs are complete", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/orders/%.0f/deliver", orderID), nil, suite.advisorID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/orders/%.0f", orderID), nil, suite.advisorID)
		o := orderFromResponse(t, parseResponse(t, w))
		assert.Equal(t, float64(domain.OrderDelivered), o["status"])
	})
}

// =============================================================================
// Flow 2: identity resolution
// =============================================================================

func TestFlow2_Identity(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("request without X-User-Id is rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/v1/orders", nil, 0)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user id is rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/v1/orders", nil, 99999)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 3: job pause and resume
// =============================================================================

func TestFlow3_PauseResume(t *testing.T) {
	suite := setupTestSuite(t)

	jobID := suite.createStartedJob(t)

	t.Run("pause requires a reason", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/pause", jobID),
			map[string]interface{}{}, suite.technicianID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pause then resume returns the job to in process", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/pause", jobID),
			map[string]interface{}{"reason": "Waiting for brake pads"}, suite.technicianID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/resume", jobID), nil, suite.technicianID)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/jobs/%.0f/pauses", jobID), nil, suite.foremanID)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		pauses, ok := resp.Data["pauses"].([]interface{})
		require.True(t, ok)
		require.Len(t, pauses, 1)
		assert.NotNil(t, pauses[0].(map[string]interface{})["resumed_at"])
	})
}

// =============================================================================
// Flow 4: inventory and search
// =============================================================================

func TestFlow4_InventoryAndSearch(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("create part and reject duplicate part number", func(t *testing.T) {
		reqBody := map[string]interface{}{"part_number": "of-9018", "type": "Oil filter", "quantity": 10}

		w := suite.makeRequest(t, "POST", "/api/v1/parts", reqBody, suite.advisorID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = suite.makeRequest(t, "POST", "/api/v1/parts", reqBody, suite.advisorID)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("technician cannot manage stock", func(t *testing.T) {
		reqBody := map[string]interface{}{"part_number": "BP-5521", "type": "Brake pads", "quantity": 4}

		w := suite.makeRequest(t, "POST", "/api/v1/parts", reqBody, suite.technicianID)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("decrease below stock is rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/v1/parts/number/OF-9018", nil, suite.advisorID)
		require.Equal(t, http.StatusOK, w.Code)
		part := parseResponse(t, w).Data["part"].(map[string]interface{})
		id := part["id"].(float64)

		w = suite.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/parts/%.0f/decrease", id),
			map[string]interface{}{"amount": 50}, suite.advisorID)
		require.NotEqual(t, http.StatusOK, w.Code)
		assert.Equal(t, "INSUFFICIENT_STOCK", parseResponse(t, w).Error.Code)
	})

	t.Run("global search finds orders, vehicles and customers", func(t *testing.T) {
		suite.createOrder(t)

		w := suite.makeRequest(t, "GET", "/api/v1/search?q=srv-000001", nil, suite.advisorID)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		orders := resp.Data["orders"].([]interface{})
		require.Len(t, orders, 1)

		w = suite.makeRequest(t, "GET", "/api/v1/search?q=4352", nil, suite.advisorID)
		require.Equal(t, http.StatusOK, w.Code)
		resp = parseResponse(t, w)
		vehicles := resp.Data["vehicles"].([]interface{})
		require.Len(t, vehicles, 1)

		w = suite.makeRequest(t, "GET", "/api/v1/search?q=laura", nil, suite.advisorID)
		require.Equal(t, http.StatusOK, w.Code)
		resp = parseResponse(t, w)
		customers := resp.Data["customers"].([]interface{})
		require.Len(t, customers, 1)
	})
}

// createOrder creates a basic one-job service order and returns its id.
func (s *E2ETestSuite) createOrder(t *testing.T) float64 {
	w := s.makeRequest(t, "POST", "/api/v1/orders", map[string]interface{}{
		"type_id":           domain.OrderTypeService,
		"customer_id":       s.customerID,
		"vehicle_id":        s.vehicleID,
		"promised_delivery": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"jobs":              []map[string]interface{}{{"description": "General inspection"}},
	}, s.advisorID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return orderFromResponse(t, parseResponse(t, w))["id"].(float64)
}

// createStartedJob creates an order, assigns its job and starts it.
func (s *E2ETestSuite) createStartedJob(t *testing.T) float64 {
	orderID := s.createOrder(t)

	w := s.makeRequest(t, "GET", fmt.Sprintf("/api/v1/orders/%.0f/jobs", orderID), nil, s.foremanID)
	require.Equal(t, http.StatusOK, w.Code)
	jobs := parseResponse(t, w).Data["jobs"].([]interface{})
	require.NotEmpty(t, jobs)
	jobID := jobs[0].(map[string]interface{})["id"].(float64)

	w = s.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/assign", jobID),
		map[string]interface{}{"technician_id": s.technicianID}, s.foremanID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.makeRequest(t, "PUT", fmt.Sprintf("/api/v1/jobs/%.0f/start", jobID), nil, s.technicianID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return jobID
}
