package job

import (
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
	rg.POST("/orders/:id/jobs", h.Add)
	rg.GET("/orders/:id/jobs", h.ListByOrder)
	rg.GET("/jobs/my", h.MyQueue)
	rg.GET("/jobs/:id/pauses", h.ListPauses)
	rg.PUT("/jobs/:id/assign", h.Assign)
	rg.PUT("/jobs/:id/reassign", h.Reassign)
	rg.PUT("/jobs/:id/start", h.Start)
	rg.PUT("/jobs/:id/complete", h.Complete)
	rg.PUT("/jobs/:id/pause", h.Pause)
	rg.PUT("/jobs/:id/resume", h.Resume)
}

func (h *Handler) Add(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}
	var req AddJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Add(c.Request.Context(), orderID, req)
	if err != nil {
		h.writeError(c, err, "Failed to add job")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"job": j})
}

func (h *Handler) ListByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}
	jobs, err := h.service.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list jobs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *Handler) MyQueue(c *gin.Context) {
	var status *domain.JobStatus
	if raw := c.Query("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < int(domain.JobPending) || v > int(domain.JobCancelled) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter")
			return
		}
		s := domain.JobStatus(v)
		status = &s
	}

	jobs, err := h.service.MyQueue(c.Request.Context(), c.GetInt64("user_id"), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list jobs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *Handler) ListPauses(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	pauses, err := h.service.ListPauses(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list pauses")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pauses": pauses})
}

func (h *Handler) Assign(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Assign(c.Request.Context(), c.GetInt64("user_id"), jobID, req.TechnicianID)
	if err != nil {
		h.writeError(c, err, "Failed to assign job")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Reassign(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Reassign(c.Request.Context(), c.GetInt64("user_id"), jobID, req.TechnicianID)
	if err != nil {
		h.writeError(c, err, "Failed to reassign job")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Start(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}

	j, err := h.service.Start(c.Request.Context(), c.GetInt64("user_id"), jobID)
	if err != nil {
		h.writeError(c, err, "Failed to start job")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Complete(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Complete(c.Request.Context(), c.GetInt64("user_id"), jobID, req.Comments)
	if err != nil {
		h.writeError(c, err, "Failed to complete job")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Pause(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}
	var req PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Pause reason is required")
		return
	}

	j, err := h.service.Pause(c.Request.Context(), c.GetInt64("user_id"), jobID, req.Reason)
	if err != nil {
		h.writeError(c, err, "Failed to pause job")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Resume(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}

	j, err := h.service.Resume(c.Request.Context(), c.GetInt64("user_id"), jobID)
	if err != nil {
		h.writeError(c, err, "Failed to resume job")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or order not found")
	case ErrOrderClosed:
		response.Error(c, http.StatusBadRequest, "ORDER_CLOSED", "Order is not open for changes")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the foreman can do this")
	case ErrInvalidTransition:
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Job is not in a state allowing this")
	case ErrInvalidTechnician:
		response.Error(c, http.StatusBadRequest, "INVALID_TECHNICIAN", "Target user is not an active technician")
	case ErrAlreadyAssigned:
		response.Error(c, http.StatusBadRequest, "ALREADY_ASSIGNED", "Job already has a technician")
	case ErrSameTechnician:
		response.Error(c, http.StatusBadRequest, "SAME_TECHNICIAN", "Job is already assigned to this technician")
	case ErrNotYourJob:
		response.Error(c, http.StatusForbidden, "NOT_YOUR_JOB", "Job is assigned to another technician")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
