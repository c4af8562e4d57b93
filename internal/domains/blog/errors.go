package blog

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("post not found")
	ErrInvalidCategory = errors.New("unknown blog category")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
