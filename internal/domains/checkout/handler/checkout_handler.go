package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
)

type CheckoutHandler struct {
	service checkout.Service
}

func NewCheckoutHandler(service checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type quoteRequest struct {
	ProductID      uuid.UUID `json:"product_id"`
	DeliveryOption string    `json:"delivery_option"`
}

// Quote handles POST /api/v1/orders/quote. The shop page calls it as
// the buyer switches delivery options, nothing is sent or stored.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ProductID == uuid.Nil || req.DeliveryOption == "" {
		response.BadRequest(c, "product_id and delivery_option are required")
		return
	}

	conf, err := h.service.Quote(c.Request.Context(), req.ProductID, req.DeliveryOption)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conf)
}

// PlaceOrder handles POST /api/v1/orders.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	conf, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conf)
}

func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	status := checkout.GetHTTPStatusCode(err)
	switch status {
	case http.StatusInternalServerError:
		response.InternalServerError(c, "Something went wrong")
	case http.StatusBadGateway:
		response.ErrorResponse(c, status, response.CodeFor(status), "Failed to place order. Please try again.")
	default:
		response.ErrorResponse(c, status, response.CodeFor(status), err.Error())
	}
}
