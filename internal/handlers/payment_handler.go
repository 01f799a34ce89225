package handlers

import (
	"net/http"

	"petbnb_backend/internal/services"
	"petbnb_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(authed *gin.RouterGroup) {
	payments := authed.Group("/payments")
	{
		payments.POST("/create-intent", h.CreateIntent)
		payments.GET("/booking/:id", h.ListByBooking)
	}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateIntentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, intent)
}

func (h *PaymentHandler) ListByBooking(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	transactions, err := h.paymentService.ListByBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
