package shop

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrInvalidCategory  = errors.New("unknown product category")
	ErrInvalidImageType = errors.New("unsupported image type")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidImageType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
