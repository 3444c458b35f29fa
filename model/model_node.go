package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Action types a node can carry. Exactly one is active per node.
const (
	ActionSlideshow = "slideshow"
	ActionImage     = "image"
	ActionVideo     = "video"
	ActionPDF       = "pdf"
	ActionIframe    = "iframe"
)

// Subtitle references a VTT object in S3 (key only, streamed via /api/subtitles).
type Subtitle struct {
	S3Key string `json:"s3Key,omitempty" bson:"s3_key,omitempty"`
}

// Media is an uploaded object: S3 key plus the public CDN URL.
type Media struct {
	S3Key string `json:"s3Key,omitempty" bson:"s3_key,omitempty"`
	S3URL string `json:"s3Url,omitempty" bson:"s3_url,omitempty"`
}

// Video is a playable upload with an optional subtitle track.
type Video struct {
	S3Key    string    `json:"s3Key,omitempty"    bson:"s3_key,omitempty"`
	S3URL    string    `json:"s3Url,omitempty"    bson:"s3_url,omitempty"`
	Subtitle *Subtitle `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
}

// ActionPopup is a small image overlaid on top of the action content,
// positioned in percent of the overlay box.
type ActionPopup struct {
	S3Key string  `json:"s3Key,omitempty" bson:"s3_key,omitempty"`
	S3URL string  `json:"s3Url,omitempty" bson:"s3_url,omitempty"`
	X     float64 `json:"x,omitempty"     bson:"x,omitempty"`
	Y     float64 `json:"y,omitempty"     bson:"y,omitempty"`
}

// Action is the overlay content descriptor of a node. Type selects which of
// the resource fields applies; Width/Height override the overlay box size in
// viewport units.
type Action struct {
	Type        string       `json:"type"                  bson:"type"`
	S3Key       string       `json:"s3Key,omitempty"       bson:"s3_key,omitempty"`
	S3URL       string       `json:"s3Url,omitempty"       bson:"s3_url,omitempty"`
	ExternalURL string       `json:"externalUrl,omitempty" bson:"external_url,omitempty"`
	Images      []Media      `json:"images,omitempty"      bson:"images,omitempty"`
	Subtitle    *Subtitle    `json:"subtitle,omitempty"    bson:"subtitle,omitempty"`
	Popup       *ActionPopup `json:"popup,omitempty"       bson:"popup,omitempty"`
	Width       float64      `json:"width,omitempty"       bson:"width,omitempty"`
	Height      float64      `json:"height,omitempty"      bson:"height,omitempty"`
}

// URL returns the resource the action points at, preferring the uploaded
// object over an external link.
func (a *Action) URL() string {
	if a.S3URL != "" {
		return a.S3URL
	}
	return a.ExternalURL
}

// Node is one navigable topic on the kiosk screen. Nodes are stored flat with
// a parent reference; Children is populated only when the tree is assembled
// for the /api/nodes/tree response.
type Node struct {
	ID     bson.ObjectID  `json:"_id"              bson:"_id,omitempty"`
	Title  string         `json:"title"            bson:"title"`
	X      float64        `json:"x"                bson:"x"`
	Y      float64        `json:"y"                bson:"y"`
	Order  int            `json:"order"            bson:"order"`
	Parent *bson.ObjectID `json:"parent,omitempty" bson:"parent,omitempty"`
	Video  *Video         `json:"video,omitempty"  bson:"video,omitempty"`
	Action *Action        `json:"action,omitempty" bson:"action,omitempty"`

	Children []*Node `json:"children" bson:"-"`
}
