package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type PhotoHandler struct {
	service photos.Service
}

func NewPhotoHandler(svc photos.Service) *PhotoHandler {
	return &PhotoHandler{service: svc}
}

// ActiveHero - GET /hero (public)
func (h *PhotoHandler) ActiveHero(c *gin.Context) {
	hero, err := h.service.ActiveHero(c.Request.Context())
	if err != nil {
		logger.Error("active hero fetch failed", err)
		response.InternalServerError(c, "Failed to load hero image. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, hero)
}

// Gallery - GET /gallery (public)
func (h *PhotoHandler) Gallery(c *gin.Context) {
	images, err := h.service.ListGallery(c.Request.Context())
	if err != nil {
		logger.Error("gallery fetch failed", err)
		response.InternalServerError(c, "Failed to load gallery. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, images)
}

// ListHero - GET /admin/hero
func (h *PhotoHandler) ListHero(c *gin.Context) {
	images, err := h.service.ListHero(c.Request.Context())
	if err != nil {
		logger.Error("hero list failed", err)
		response.InternalServerError(c, "Failed to load hero images. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, images)
}

// UploadHero - POST /admin/hero (multipart, field "image")
func (h *PhotoHandler) UploadHero(c *gin.Context) {
	file, err := upload.FromForm(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	img, err := h.service.UploadHero(c.Request.Context(), file)
	if err != nil {
		h.renderError(c, err, "Failed to upload image. Please try again.")
		return
	}
	response.Success(c, http.StatusCreated, img)
}

// UploadGallery - POST /admin/gallery (multipart, field "image")
func (h *PhotoHandler) UploadGallery(c *gin.Context) {
	file, err := upload.FromForm(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req photos.GalleryUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	img, err := h.service.UploadGallery(c.Request.Context(), file, req)
	if err != nil {
		h.renderError(c, err, "Failed to upload image. Please try again.")
		return
	}
	response.Success(c, http.StatusCreated, img)
}

// ActivateHero - POST /admin/hero/:id/activate
func (h *PhotoHandler) ActivateHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ActivateHero(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to update hero image. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"activated": id})
}

// DeleteHero - DELETE /admin/hero/:id
func (h *PhotoHandler) DeleteHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteHero(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to delete image. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// DeleteGallery - DELETE /admin/gallery/:id
func (h *PhotoHandler) DeleteGallery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteGallery(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to delete image. Please try again.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *PhotoHandler) renderError(c *gin.Context, err error, generic string) {
	status := photos.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error("photo operation failed", err)
		response.InternalServerError(c, generic)
		return
	}
	response.ErrorResponse(c, status, response.CodeFor(status), err.Error())
}
