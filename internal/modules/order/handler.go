package order

import (
	"fmt"
	"net/http"
	"strconv"

	"carsline/internal/domain"
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
	rg.POST("/orders", h.Create)
	rg.GET("/orders", h.ListOpen)
	rg.GET("/orders/:id", h.GetDetail)
	rg.PUT("/orders/:id/deliver", h.Deliver)
	rg.PUT("/orders/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	advisorID := c.GetInt64("user_id")
	o, err := h.service.Create(c.Request.Context(), advisorID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown customer or vehicle")
		case ErrVehicleMismatch:
			response.Error(c, http.StatusBadRequest, "VEHICLE_MISMATCH", "Vehicle does not belong to the customer")
		case ErrNumberExhausted:
			response.Error(c, http.StatusConflict, "ORDER_NUMBER_CONFLICT", "Could not claim an order number, try again")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

func (h *Handler) ListOpen(c *gin.Context) {
	typeID, _ := strconv.ParseInt(c.DefaultQuery("type_id", "1"), 10, 64)

	// advisors see their own queue, the foreman and admin see everything
	advisorID := c.GetInt64("user_id")
	switch c.GetInt64("role_id") {
	case domain.RoleForeman, domain.RoleAdmin:
		advisorID = 0
	}

	orders, err := h.service.ListOpen(c.Request.Context(), typeID, advisorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *Handler) GetDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	o, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Deliver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	outstanding, err := h.service.Deliver(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrOrderClosed:
			response.Error(c, http.StatusBadRequest, "ORDER_CLOSED", "Order is already delivered or cancelled")
		case ErrJobsOutstanding:
			response.Error(c, http.StatusBadRequest, "JOBS_OUTSTANDING",
				fmt.Sprintf("%d job(s) are not completed yet", outstanding))
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deliver order")
		}
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Order delivered", gin.H{"order_id": id})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrOrderClosed:
			response.Error(c, http.StatusBadRequest, "ORDER_CLOSED", "Order is already delivered or cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel order")
		}
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Order cancelled", gin.H{"order_id": id})
}
