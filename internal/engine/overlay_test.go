package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"oci_kiosk/model"
)

func nodeWithAction(a *model.Action) *model.Node {
	return &model.Node{ID: bson.NewObjectID(), Title: "n", Action: a}
}

func TestRenderOverlayPlaceholderWhenNoAction(t *testing.T) {
	out := RenderOverlay(State{})
	assert.Equal(t, OverlayNone, out.Kind)

	out = RenderOverlay(State{CurrentNode: nodeWithAction(nil)})
	assert.Equal(t, OverlayNone, out.Kind)

	// unrecognized type still renders the placeholder, never a blank screen
	out = RenderOverlay(State{CurrentNode: nodeWithAction(&model.Action{Type: "hologram"})})
	assert.Equal(t, OverlayNone, out.Kind)
}

func TestRenderOverlaySpeakerShortCircuits(t *testing.T) {
	node := nodeWithAction(&model.Action{Type: model.ActionImage, S3URL: "https://cdn/img.png"})

	spk := &model.AgendaItem{Name: "Ada", InfoImageURL: "https://cdn/ada.png"}
	out := RenderOverlay(State{CurrentNode: node, SelectedSpeaker: spk})
	assert.Equal(t, OverlaySpeakerImage, out.Kind)
	assert.Equal(t, "https://cdn/ada.png", out.URL)

	noImage := &model.AgendaItem{Name: "Ada"}
	out = RenderOverlay(State{CurrentNode: node, SelectedSpeaker: noImage})
	assert.Equal(t, OverlaySpeakerPlaceholder, out.Kind)
}

func TestRenderOverlayTypes(t *testing.T) {
	tests := []struct {
		name   string
		action *model.Action
		kind   OverlayKind
		url    string
	}{
		{
			name:   "image",
			action: &model.Action{Type: model.ActionImage, S3URL: "https://cdn/a.png"},
			kind:   OverlayImage,
			url:    "https://cdn/a.png",
		},
		{
			name:   "image falls back to external url",
			action: &model.Action{Type: model.ActionImage, ExternalURL: "https://ext/a.png"},
			kind:   OverlayImage,
			url:    "https://ext/a.png",
		},
		{
			name:   "iframe",
			action: &model.Action{Type: model.ActionIframe, ExternalURL: "https://maps.example.com"},
			kind:   OverlayIframe,
			url:    "https://maps.example.com",
		},
		{
			name:   "pdf goes through the gview proxy",
			action: &model.Action{Type: model.ActionPDF, S3URL: "https://cdn/doc.pdf"},
			kind:   OverlayPDF,
			url:    gviewBase + "https%3A%2F%2Fcdn%2Fdoc.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderOverlay(State{CurrentNode: nodeWithAction(tt.action)})
			assert.Equal(t, tt.kind, out.Kind)
			assert.Equal(t, tt.url, out.URL)
		})
	}
}

func TestRenderOverlayVideoSubtitle(t *testing.T) {
	a := &model.Action{
		Type:     model.ActionVideo,
		S3URL:    "https://cdn/clip.mp4",
		Subtitle: &model.Subtitle{S3Key: "subtitles/clip.vtt"},
	}
	out := RenderOverlay(State{CurrentNode: nodeWithAction(a)})
	assert.Equal(t, OverlayVideo, out.Kind)
	assert.Equal(t, "/api/subtitles/clip.vtt", out.SubtitleURL)
}

func TestRenderOverlaySlideshow(t *testing.T) {
	a := &model.Action{
		Type: model.ActionSlideshow,
		Images: []model.Media{
			{S3URL: "https://cdn/1.png"},
			{S3URL: "https://cdn/2.png"},
			{S3URL: "https://cdn/3.png"},
		},
	}
	out := RenderOverlay(State{CurrentNode: nodeWithAction(a), SlideIndex: 2})
	assert.Equal(t, OverlaySlideshow, out.Kind)
	assert.Len(t, out.Images, 3)
	assert.Equal(t, 2, out.SlideIndex)

	// empty slideshow degrades to the placeholder
	out = RenderOverlay(State{CurrentNode: nodeWithAction(&model.Action{Type: model.ActionSlideshow})})
	assert.Equal(t, OverlayNone, out.Kind)
}

func TestRenderOverlayBoxAndPopup(t *testing.T) {
	out := RenderOverlay(State{CurrentNode: nodeWithAction(&model.Action{Type: model.ActionImage, S3URL: "u"})})
	assert.Equal(t, defaultOverlayWidth, out.Width)
	assert.Equal(t, defaultOverlayHeight, out.Height)

	a := &model.Action{
		Type:   model.ActionImage,
		S3URL:  "u",
		Width:  60,
		Height: 70,
		Popup:  &model.ActionPopup{S3URL: "https://cdn/pop.png", X: 10, Y: 90},
	}
	out = RenderOverlay(State{CurrentNode: nodeWithAction(a)})
	assert.Equal(t, 60.0, out.Width)
	assert.Equal(t, 70.0, out.Height)
	assert.Equal(t, "https://cdn/pop.png", out.PopupURL)
	assert.Equal(t, 10.0, out.PopupX)
	assert.Equal(t, 90.0, out.PopupY)
}

func TestSubtitleTrackURL(t *testing.T) {
	assert.Equal(t, "", SubtitleTrackURL(""))
	assert.Equal(t, "/api/subtitles/clip.vtt", SubtitleTrackURL("subtitles/clip.vtt"))
	assert.Equal(t, "/api/subtitles/clip.vtt", SubtitleTrackURL("clip.vtt"))
}
