package podcast

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound             = errors.New("episode not found")
	ErrMissingMedia         = errors.New("an episode file is required")
	ErrInvalidMediaType     = errors.New("unsupported media type")
	ErrInvalidThumbnailType = errors.New("unsupported thumbnail type")
	ErrThumbnailForAudio    = errors.New("thumbnails only apply to video episodes")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingMedia),
		errors.Is(err, ErrInvalidMediaType),
		errors.Is(err, ErrInvalidThumbnailType),
		errors.Is(err, ErrThumbnailForAudio):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
