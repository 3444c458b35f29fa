package dto

import "oci_kiosk/model"

// ===== Request =====

// AgendaItemsDTO is the body of POST /api/agenda and PUT /api/agenda/:id:
// the full replacement item list, mirroring how the CMS edits agendas.
type AgendaItemsDTO struct {
	Items []model.AgendaItem `json:"items"`
}

// ===== Response =====

// ActiveAgendaResponse is returned by GET /api/agenda/active. ActiveItem is
// the manually toggled item if any, otherwise the item whose time window
// contains the current time; nil when neither applies.
type ActiveAgendaResponse struct {
	ActiveItem *model.AgendaItem `json:"activeItem"`
	NextItem   *model.AgendaItem `json:"nextItem"`
}
