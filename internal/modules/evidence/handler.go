package evidence

import (
	"net/http"
	"strconv"

	"carsline/internal/domain"
	"carsline/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// uploads are phone photos; anything bigger is a client bug
const maxUploadBytes = 20 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders/:id/evidence", h.Attach)
	rg.GET("/orders/:id/evidence", h.ListByOrder)
	rg.GET("/evidence/:id/image", h.Image)
	rg.DELETE("/evidence/:id", h.Delete)
}

func (h *Handler) Attach(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Expected multipart form data")
		return
	}

	files := form.File["files"]
	descriptions := form.Value["descriptions"]
	if len(files) == 0 || len(files) != len(descriptions) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Each file needs a matching description")
		return
	}

	category := domain.EvidenceCategory(c.PostForm("category"))
	uploads := make([]Upload, 0, len(files))
	opened := make([]interface{ Close() error }, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for i, fh := range files {
		if fh.Size > maxUploadBytes {
			response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the upload limit")
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read upload")
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, Upload{
			File:        f,
			Filename:    fh.Filename,
			Description: descriptions[i],
		})
	}

	rows, err := h.service.Attach(c.Request.Context(), orderID, category, uploads)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category or empty upload")
		case ErrOrderGone:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store evidence")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"evidence": rows, "count": len(rows)})
}

func (h *Handler) ListByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	rows, err := h.service.ListByOrder(c.Request.Context(), orderID, c.Query("category"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list evidence")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"evidence": rows, "count": len(rows)})
}

func (h *Handler) Image(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid evidence ID")
		return
	}

	data, name, err := h.service.Image(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Evidence not found")
		case ErrFileMissing:
			response.Error(c, http.StatusNotFound, "FILE_MISSING", "Stored file no longer exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read image")
		}
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Data(http.StatusOK, "image/jpeg", data)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid evidence ID")
		return
	}
	removeFile := c.Query("purge") == "true"

	if err := h.service.Delete(c.Request.Context(), id, removeFile); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Evidence not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete evidence")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Evidence deleted", gin.H{"id": id})
}
