package partline

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
	rg.POST("/jobs/:id/parts", h.Add)
	rg.GET("/jobs/:id/parts", h.ListByJob)
	rg.GET("/orders/:id/parts", h.ListByOrder)
	rg.DELETE("/part-lines/:id", h.Delete)
}

func (h *Handler) Add(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	var req AddLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	lines, err := h.service.Add(c.Request.Context(), jobID, req)
	if err != nil {
		h.writeError(c, err, "Failed to add parts")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lines": lines, "count": len(lines)})
}

func (h *Handler) ListByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	lines, err := h.service.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list parts")
		return
	}

	total := 0.0
	for _, l := range lines {
		total += l.Total()
	}
	response.Success(c, http.StatusOK, gin.H{"lines": lines, "total": total})
}

func (h *Handler) ListByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}
	lines, err := h.service.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list parts")
		return
	}

	total := 0.0
	for _, l := range lines {
		total += l.Total()
	}
	response.Success(c, http.StatusOK, gin.H{"lines": lines, "total": total})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part line ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete part line")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Part line deleted", gin.H{"id": id})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or part line not found")
	case ErrJobClosed:
		response.Error(c, http.StatusBadRequest, "JOB_CLOSED", "Job no longer accepts part changes")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
