package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type ShopHandler struct {
	service shop.Service
}

func NewShopHandler(service shop.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// ListActive handles GET /api/v1/shop.
func (h *ShopHandler) ListActive(c *gin.Context) {
	products, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// List handles GET /api/v1/admin/shop, inactive products included.
func (h *ShopHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// Create handles POST /api/v1/admin/shop as multipart form data with
// an optional "image" part.
func (h *ShopHandler) Create(c *gin.Context) {
	req, image, ok := h.bindForm(c)
	if !ok {
		return
	}

	product, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// Update handles PUT /api/v1/admin/shop/:id. Omitting the image part
// keeps the current one.
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	req, image, ok := h.bindForm(c)
	if !ok {
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, req, image)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Delete handles DELETE /api/v1/admin/shop/:id.
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *ShopHandler) bindForm(c *gin.Context) (shop.SaveProductRequest, *upload.File, bool) {
	var req shop.SaveProductRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data")
		return req, nil, false
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return req, nil, false
	}

	image, err := upload.FromForm(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return req, nil, false
	}
	return req, image, true
}

func (h *ShopHandler) renderError(c *gin.Context, err error) {
	status := shop.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, response.CodeFor(status), err.Error())
}
