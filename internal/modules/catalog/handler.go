package catalog

import (
	"net/http"
	"strconv"

	"carsline/internal/domain"
	"carsline/internal/middleware"
	"carsline/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", h.ListCustomers)
	rg.POST("/customers", h.CreateCustomer)
	rg.GET("/customers/:id", h.GetCustomer)
	rg.PUT("/customers/:id", h.UpdateCustomer)
	rg.DELETE("/customers/:id", h.DeleteCustomer)
	rg.GET("/customers/:id/vehicles", h.CustomerVehicles)

	rg.POST("/vehicles", h.CreateVehicle)
	rg.GET("/vehicles/:id", h.GetVehicle)
	rg.PUT("/vehicles/:id", h.UpdateVehicle)
	rg.DELETE("/vehicles/:id", h.DeleteVehicle)

	rg.GET("/service-types", h.ListServiceTypes)
	rg.POST("/service-types", middleware.AdminOnly(), h.CreateServiceType)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var customers []domain.Customer
	var err error
	if name := c.Query("name"); name != "" {
		customers, err = h.service.SearchCustomers(c.Request.Context(), name, limit)
	} else {
		customers, err = h.service.ListCustomers(c.Request.Context(), limit, offset)
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list customers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create customer")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"customer": customer})
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid customer ID")
	if !ok {
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.writeCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid customer ID")
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		h.writeCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid customer ID")
	if !ok {
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.writeCustomerError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Customer deactivated", gin.H{"id": id})
}

func (h *Handler) CustomerVehicles(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid customer ID")
	if !ok {
		return
	}

	vehicles, err := h.service.CustomerVehicles(c.Request.Context(), id)
	if err != nil {
		h.writeCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles, "count": len(vehicles)})
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	vehicle, err := h.service.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		h.writeVehicleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"vehicle": vehicle})
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid vehicle ID")
	if !ok {
		return
	}

	vehicle, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.writeVehicleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": vehicle})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid vehicle ID")
	if !ok {
		return
	}
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), id, req)
	if err != nil {
		h.writeVehicleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": vehicle})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := h.paramID(c, "Invalid vehicle ID")
	if !ok {
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.writeVehicleError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Vehicle deactivated", gin.H{"id": id})
}

func (h *Handler) ListServiceTypes(c *gin.Context) {
	types, err := h.service.ListServiceTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list service types")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_types": types})
}

func (h *Handler) CreateServiceType(c *gin.Context) {
	var req ServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	st, err := h.service.CreateServiceType(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service type")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service_type": st})
}

func (h *Handler) paramID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", msg)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeCustomerError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Customer operation failed")
	}
}

func (h *Handler) writeVehicleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Customer does not exist")
	case ErrDuplicateVIN:
		response.Error(c, http.StatusConflict, "DUPLICATE_VIN", "A vehicle with this VIN is already registered")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Vehicle operation failed")
	}
}
