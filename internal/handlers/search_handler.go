package handlers

import (
	"net/http"

	"petbnb_backend/internal/services"
	"petbnb_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(public *gin.RouterGroup) {
	search := public.Group("/search")
	{
		search.POST("/location", h.SearchByLocation)
	}
}

func (h *SearchHandler) SearchByLocation(c *gin.Context) {
	var req dto.LocationSearchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	results, err := h.searchService.SearchByLocation(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
