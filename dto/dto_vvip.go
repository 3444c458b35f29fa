package dto

import "oci_kiosk/model"

// ===== Request =====
type CreateVVIPDTO struct {
	Name        string      `json:"name" validate:"required"`
	Designation string      `json:"designation"`
	Video       model.Video `json:"video"`
}

type UpdateVVIPDTO struct {
	Name        *string      `json:"name,omitempty"`
	Designation *string      `json:"designation,omitempty"`
	Video       *model.Video `json:"video,omitempty"`
	Play        *bool        `json:"play,omitempty"`
}
