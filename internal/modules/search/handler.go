package search

import (
	"net/http"

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
	rg.GET("/search", h.Search)
}

func (h *Handler) Search(c *gin.Context) {
	res, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if err == ErrQueryTooShort {
			response.Error(c, http.StatusBadRequest, "QUERY_TOO_SHORT", "Search needs at least 3 characters")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	if res.Total() == 0 {
		response.SuccessWithMessage(c, http.StatusOK, "No results", res)
		return
	}
	response.Success(c, http.StatusOK, res)
}
