package dto

import "oci_kiosk/model"

// ===== Request =====
type UpdateHomeDTO struct {
	Video    *model.Video    `json:"video,omitempty"`
	Subtitle *model.Subtitle `json:"subtitle,omitempty"`
}

// ===== Response =====

// HomeResponse is returned by GET /api/home. OK is false when no home video
// has been configured yet.
type HomeResponse struct {
	OK       bool            `json:"ok"`
	Video    *model.Video    `json:"video,omitempty"`
	Subtitle *model.Subtitle `json:"subtitle,omitempty"`
}
