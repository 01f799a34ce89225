package handlers

import (
	"net/http"

	"petbnb_backend/internal/middleware"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/services"
	"petbnb_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CaregiverHandler struct {
	*BaseHandler
	caregiverService services.CaregiverService
}

func NewCaregiverHandler(base *BaseHandler, caregiverService services.CaregiverService) *CaregiverHandler {
	return &CaregiverHandler{
		BaseHandler:      base,
		caregiverService: caregiverService,
	}
}

func (h *CaregiverHandler) RegisterRoutes(authed *gin.RouterGroup) {
	caregiver := authed.Group("/caregiver")
	{
		caregiver.POST("/services", h.CreateService)
		caregiver.GET("/services", h.ListServices)
		caregiver.PUT("/services/:id", h.UpdateService)
		caregiver.POST("/submit-id-verification", h.SubmitIDVerification)
		caregiver.GET("/id-verification-status", h.IDVerificationStatus)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PUT("/id-verifications/:id/review", h.ReviewIDVerification)
	}
}

func (h *CaregiverHandler) CreateService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.caregiverService.CreateService(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *CaregiverHandler) ListServices(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	services, err := h.caregiverService.ListServices(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *CaregiverHandler) UpdateService(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.caregiverService.UpdateService(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *CaregiverHandler) SubmitIDVerification(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitIDVerificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	verification, err := h.caregiverService.SubmitIDVerification(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, verification)
}

func (h *CaregiverHandler) IDVerificationStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status, err := h.caregiverService.IDVerificationStatus(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *CaregiverHandler) ReviewIDVerification(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewIDVerificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	verification, err := h.caregiverService.ReviewIDVerification(c.Request.Context(), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, verification)
}
