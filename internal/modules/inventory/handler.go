package inventory

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
	rg.GET("/parts", h.List)
	rg.GET("/parts/paginated", h.ListPaginated)
	rg.GET("/parts/autocomplete", h.Autocomplete)
	rg.GET("/parts/number/:number", h.GetByPartNumber)
	stock := middleware.RequireRole(domain.RoleAdvisor, domain.RoleForeman)
	rg.POST("/parts", stock, h.Create)
	rg.PUT("/parts/:id/increase", stock, h.Increase)
	rg.PUT("/parts/:id/decrease", stock, h.Decrease)
	rg.DELETE("/parts/:id", stock, h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	parts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list parts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parts": parts, "count": len(parts)})
}

func (h *Handler) ListPaginated(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	parts, total, err := h.service.ListPaginated(c.Request.Context(), c.Query("search"), page, pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list parts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"parts": parts,
		"pagination": gin.H{
			"page":  page,
			"total": total,
		},
	})
}

func (h *Handler) Autocomplete(c *gin.Context) {
	parts, err := h.service.Autocomplete(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search parts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parts": parts})
}

func (h *Handler) GetByPartNumber(c *gin.Context) {
	p, err := h.service.GetByPartNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load part")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"part": p})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Part number is required")
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "DUPLICATE_PART", "Part number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create part")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"part": p})
}

func (h *Handler) Increase(c *gin.Context) {
	h.adjust(c, false)
}

func (h *Handler) Decrease(c *gin.Context) {
	h.adjust(c, true)
}

func (h *Handler) adjust(c *gin.Context, decrease bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}
	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be a positive integer")
		return
	}

	var p interface{}
	if decrease {
		p, err = h.service.Decrease(c.Request.Context(), id, req.Amount)
	} else {
		p, err = h.service.Increase(c.Request.Context(), id, req.Amount)
	}
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
		case ErrInsufficient:
			response.Error(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", "Not enough stock for this decrease")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be a positive integer")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to adjust stock")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"part": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid part ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Part not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete part")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Part deleted", gin.H{"id": id})
}
