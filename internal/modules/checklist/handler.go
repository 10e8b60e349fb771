package checklist

import (
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
	rg.POST("/jobs/:id/checklist", h.Submit)
	rg.GET("/jobs/:id/checklist", h.GetByJob)
}

func (h *Handler) Submit(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cl, err := h.service.Submit(c.Request.Context(), jobID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Checklist has missing or invalid fields")
		case ErrJobGone:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save checklist")
		}
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Checklist saved, job completed", gin.H{"checklist": cl})
}

func (h *Handler) GetByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}

	cl, err := h.service.GetByJob(c.Request.Context(), jobID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No checklist for this job")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load checklist")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"checklist": cl})
}
