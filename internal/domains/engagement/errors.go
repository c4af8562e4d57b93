package engagement

import (
	"errors"
	"net/http"
)

var ErrDeliveryFailed = errors.New("failed to deliver message")

func GetHTTPStatusCode(err error) int {
	if errors.Is(err, ErrDeliveryFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
