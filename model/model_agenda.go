package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Speaker roles.
const (
	RoleSpeaker   = "speaker"
	RoleModerator = "moderator"
	RolePresenter = "presenter"
)

// AgendaItem is one scheduled slot. StartTime/EndTime are wall-clock "HH:MM"
// strings. At most one item in the owning agenda has IsActive set; the PUT
// handler enforces this.
type AgendaItem struct {
	ID           bson.ObjectID `json:"_id"                    bson:"_id,omitempty"`
	StartTime    string        `json:"startTime"              bson:"start_time"`
	EndTime      string        `json:"endTime"                bson:"end_time"`
	Name         string        `json:"name"                   bson:"name"`
	Title        string        `json:"title,omitempty"        bson:"title,omitempty"`
	Company      string        `json:"company,omitempty"      bson:"company,omitempty"`
	Role         string        `json:"role"                   bson:"role"`
	PhotoURL     string        `json:"photoUrl,omitempty"     bson:"photo_url,omitempty"`
	InfoImageURL string        `json:"infoImageUrl,omitempty" bson:"info_image_url,omitempty"`
	IsActive     bool          `json:"isActive"               bson:"is_active"`
}

// Agenda holds the ordered speaker list. The newest document by CreatedAt is
// the live agenda.
type Agenda struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Items     []AgendaItem  `json:"items"     bson:"items"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
