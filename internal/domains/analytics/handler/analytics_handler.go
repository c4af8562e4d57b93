package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
)

const defaultWindow = 30 * 24 * time.Hour

type AnalyticsHandler struct {
	service analytics.Service
}

func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Summary handles GET /api/v1/admin/analytics. Optional start and end
// query params are RFC 3339; the window defaults to the last 30 days.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	end := time.Now()
	start := end.Add(-defaultWindow)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "Invalid start time")
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "Invalid end time")
			return
		}
		end = parsed
	}
	if end.Before(start) {
		response.BadRequest(c, "End must not precede start")
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), start, end)
	if err != nil {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// TrackSession handles POST /api/v1/track/session.
func (h *AnalyticsHandler) TrackSession(c *gin.Context) {
	var req analytics.TrackSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	if err := h.service.TrackSession(c.Request.Context(), req); err != nil {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tracked": true})
}
