package dto

import "oci_kiosk/model"

// ===== Request =====
type CreateNodeDTO struct {
	Title  string        `json:"title" validate:"required"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Order  int           `json:"order"`
	Parent string        `json:"parent,omitempty"` // hex ObjectID of the parent node, empty for root
	Video  *model.Video  `json:"video,omitempty"`
	Action *model.Action `json:"action,omitempty"`
}

// UpdateNodeDTO uses pointers so the handler can tell "absent" from "zero".
type UpdateNodeDTO struct {
	Title  *string       `json:"title,omitempty"`
	X      *float64      `json:"x,omitempty"`
	Y      *float64      `json:"y,omitempty"`
	Order  *int          `json:"order,omitempty"`
	Parent *string       `json:"parent,omitempty"`
	Video  *model.Video  `json:"video,omitempty"`
	Action *model.Action `json:"action,omitempty"`
}

// ===== Success Response =====
type DeleteResponse struct {
	Success bool `json:"success" example:"true"`
}
