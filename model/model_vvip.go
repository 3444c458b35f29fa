package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// VVIP is a distinguished guest whose video takes over the kiosk while Play
// is set. At most one VVIP has Play=true at a time.
type VVIP struct {
	ID          bson.ObjectID `json:"_id"         bson:"_id,omitempty"`
	Name        string        `json:"name"        bson:"name"`
	Designation string        `json:"designation" bson:"designation"`
	Video       Video         `json:"video"       bson:"video"`
	Play        bool          `json:"play"        bson:"play"`
}
