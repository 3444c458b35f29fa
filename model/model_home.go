package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Home is the single looping video shown when no node is selected. The
// collection holds at most one document.
type Home struct {
	ID        bson.ObjectID `json:"_id"                bson:"_id,omitempty"`
	Video     *Video        `json:"video,omitempty"    bson:"video,omitempty"`
	Subtitle  *Subtitle     `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt"          bson:"updated_at"`
}
