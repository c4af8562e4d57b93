package checkout

import (
	"errors"
	"net/http"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrNotificationFailed = errors.New("failed to send order notification")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProductUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrNotificationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
