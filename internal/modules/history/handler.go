package history

import (
	"context"
	"net/http"
	"strconv"

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
	rg.GET("/vehicles/:id/history", h.ByVehicle)
	rg.GET("/vehicles/:id/history/general", h.GeneralByVehicle)
}

func (h *Handler) ByVehicle(c *gin.Context) {
	h.serve(c, h.service.ByVehicle)
}

func (h *Handler) GeneralByVehicle(c *gin.Context) {
	h.serve(c, h.service.GeneralByVehicle)
}

func (h *Handler) serve(c *gin.Context, load func(ctx context.Context, vehicleID int64) (*VehicleHistory, error)) {
	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	history, err := load(c.Request.Context(), vehicleID)
	if err != nil {
		if err == ErrVehicleNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
		return
	}
	response.Success(c, http.StatusOK, history)
}
