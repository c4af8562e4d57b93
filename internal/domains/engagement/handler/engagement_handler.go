package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/engagement"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
)

type EngagementHandler struct {
	service engagement.Service
}

func NewEngagementHandler(service engagement.Service) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// SubscribeNewsletter handles POST /api/v1/newsletter.
func (h *EngagementHandler) SubscribeNewsletter(c *gin.Context) {
	var req engagement.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SubscribeNewsletter(c.Request.Context(), req); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscribed": true})
}

// RequestConsultation handles POST /api/v1/consultations.
func (h *EngagementHandler) RequestConsultation(c *gin.Context) {
	var req engagement.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.RequestConsultation(c.Request.Context(), req); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func (h *EngagementHandler) renderError(c *gin.Context, err error) {
	status := engagement.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, response.CodeFor(status), "Failed to send. Please try again.")
}
