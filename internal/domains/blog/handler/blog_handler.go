package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListPublished handles GET /api/v1/blog.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GetBySlug handles GET /api/v1/blog/:slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// List handles GET /api/v1/admin/blog, drafts included.
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// Create handles POST /api/v1/admin/blog.
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Save(c.Request.Context(), nil, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

// Update handles PUT /api/v1/admin/blog/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req blog.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Save(c.Request.Context(), &id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Delete handles DELETE /api/v1/admin/blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *BlogHandler) renderError(c *gin.Context, err error) {
	status := blog.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, response.CodeFor(status), err.Error())
}
