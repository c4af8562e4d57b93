package analytics

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TrackSessionRequest is sent by the public site on page load.
type TrackSessionRequest struct {
	Page      string `json:"page"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

func (r TrackSessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Required),
	)
}
