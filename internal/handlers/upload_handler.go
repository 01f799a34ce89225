package handlers

import (
	"net/http"

	"petbnb_backend/internal/services"
	"petbnb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.POST("/upload", h.Upload)
}

// Upload accepts a multipart form with a "file" field and an optional
// "category" field used as the storage prefix.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	category := c.PostForm("category")

	result, err := h.uploadService.Upload(c.Request.Context(), userID, file, category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
