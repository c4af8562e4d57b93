package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type PodcastHandler struct {
	service podcast.Service
}

func NewPodcastHandler(service podcast.Service) *PodcastHandler {
	return &PodcastHandler{service: service}
}

// ListActive handles GET /api/v1/podcast.
func (h *PodcastHandler) ListActive(c *gin.Context) {
	episodes, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, episodes)
}

// List handles GET /api/v1/admin/podcast, inactive episodes included.
func (h *PodcastHandler) List(c *gin.Context) {
	episodes, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, episodes)
}

// Create handles POST /api/v1/admin/podcast as multipart form data
// with a required "media" part and an optional "thumbnail" part.
func (h *PodcastHandler) Create(c *gin.Context) {
	req, media, thumbnail, ok := h.bindForm(c)
	if !ok {
		return
	}

	episode, err := h.service.Create(c.Request.Context(), req, media, thumbnail)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, episode)
}

// Update handles PUT /api/v1/admin/podcast/:id. Omitting the media
// part keeps the current file.
func (h *PodcastHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid episode ID")
		return
	}

	req, media, thumbnail, ok := h.bindForm(c)
	if !ok {
		return
	}

	episode, err := h.service.Update(c.Request.Context(), id, req, media, thumbnail)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, episode)
}

// Delete handles DELETE /api/v1/admin/podcast/:id.
func (h *PodcastHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid episode ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *PodcastHandler) bindForm(c *gin.Context) (podcast.SaveEpisodeRequest, *upload.File, *upload.File, bool) {
	var req podcast.SaveEpisodeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data")
		return req, nil, nil, false
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return req, nil, nil, false
	}

	media, err := upload.FromForm(c, "media")
	if err != nil {
		response.BadRequest(c, err.Error())
		return req, nil, nil, false
	}
	thumbnail, err := upload.FromForm(c, "thumbnail")
	if err != nil {
		response.BadRequest(c, err.Error())
		return req, nil, nil, false
	}
	return req, media, thumbnail, true
}

func (h *PodcastHandler) renderError(c *gin.Context, err error) {
	status := podcast.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, response.CodeFor(status), err.Error())
}
