package photos

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("image not found")
	ErrInvalidImageType = errors.New("invalid image type: accepted formats are JPEG, PNG and WebP")
	ErrMissingFile      = errors.New("an image file is required")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidImageType), errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
