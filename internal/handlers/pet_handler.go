package handlers

import (
	"net/http"
	"strconv"

	"petbnb_backend/internal/services"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	*BaseHandler
	petService services.PetService
}

func NewPetHandler(base *BaseHandler, petService services.PetService) *PetHandler {
	return &PetHandler{
		BaseHandler: base,
		petService:  petService,
	}
}

func (h *PetHandler) RegisterRoutes(authed *gin.RouterGroup) {
	pets := authed.Group("/pets")
	{
		pets.POST("", h.Create)
		pets.GET("", h.List)
		pets.GET("/:id", h.Get)
		pets.PUT("/:id", h.Update)
		pets.DELETE("/:id", h.Delete)
		pets.POST("/:id/upload-image", h.AddImage)
		pets.DELETE("/:id/images/:index", h.RemoveImage)
		pets.GET("/:id/medical-history", h.MedicalHistory)
		pets.GET("/:id/stats", h.Stats)
		pets.GET("/:id/bookings", h.Bookings)
	}
}

func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pet, err := h.petService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	pets, err := h.petService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	pet, err := h.petService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pet, err := h.petService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.petService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pet removed"})
}

func (h *PetHandler) AddImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req struct {
		ImageURL string `json:"image_url" validate:"required,url"`
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pet, err := h.petService.AddImage(c.Request.Context(), userID, c.Param("id"), req.ImageURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) RemoveImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid image index"))
		return
	}

	pet, err := h.petService.RemoveImage(c.Request.Context(), userID, c.Param("id"), index)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) MedicalHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	history, err := h.petService.MedicalHistory(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *PetHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.petService.Stats(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *PetHandler) Bookings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookings, err := h.petService.Bookings(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}
