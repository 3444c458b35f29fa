package engine

import (
	"net/url"
	"strings"

	"oci_kiosk/model"
)

// OverlayKind says what the overlay should present.
type OverlayKind int

const (
	// OverlayNone renders the explicit "no action available" placeholder,
	// never a blank screen.
	OverlayNone OverlayKind = iota
	OverlaySpeakerImage
	OverlaySpeakerPlaceholder
	OverlaySlideshow
	OverlayImage
	OverlayVideo
	OverlayPDF
	OverlayIframe
)

// Overlay box defaults, in viewport units.
const (
	defaultOverlayWidth  = 85.0
	defaultOverlayHeight = 95.0
)

const gviewBase = "https://docs.google.com/gview?embedded=true&url="

// OverlayContent is the fully resolved projection the renderer draws.
type OverlayContent struct {
	Kind OverlayKind

	URL         string
	Images      []string
	SlideIndex  int
	SubtitleURL string

	PopupURL string
	PopupX   float64
	PopupY   float64

	Width  float64
	Height float64
}

// RenderOverlay projects the state onto overlay content. A selected speaker
// short-circuits any node action; otherwise the node's action type picks the
// viewer. Pure function of the state.
func RenderOverlay(st State) OverlayContent {
	out := OverlayContent{
		Kind:   OverlayNone,
		Width:  defaultOverlayWidth,
		Height: defaultOverlayHeight,
	}

	if spk := st.SelectedSpeaker; spk != nil {
		if spk.InfoImageURL != "" {
			out.Kind = OverlaySpeakerImage
			out.URL = spk.InfoImageURL
		} else {
			out.Kind = OverlaySpeakerPlaceholder
		}
		return out
	}

	n := st.CurrentNode
	if n == nil || n.Action == nil {
		return out
	}
	a := n.Action

	if a.Width > 0 {
		out.Width = a.Width
	}
	if a.Height > 0 {
		out.Height = a.Height
	}
	if a.Popup != nil && a.Popup.S3URL != "" {
		out.PopupURL = a.Popup.S3URL
		out.PopupX = a.Popup.X
		out.PopupY = a.Popup.Y
	}

	switch a.Type {
	case model.ActionSlideshow:
		if len(a.Images) == 0 {
			return out
		}
		out.Kind = OverlaySlideshow
		for _, img := range a.Images {
			out.Images = append(out.Images, img.S3URL)
		}
		out.SlideIndex = st.SlideIndex % len(a.Images)

	case model.ActionImage:
		out.Kind = OverlayImage
		out.URL = a.URL()

	case model.ActionVideo:
		out.Kind = OverlayVideo
		out.URL = a.URL()
		if a.Subtitle != nil {
			out.SubtitleURL = SubtitleTrackURL(a.Subtitle.S3Key)
		}

	case model.ActionPDF:
		out.Kind = OverlayPDF
		out.URL = gviewBase + url.QueryEscape(a.URL())

	case model.ActionIframe:
		out.Kind = OverlayIframe
		out.URL = a.URL()
	}

	return out
}

// SubtitleTrackURL builds the API path for a stored subtitle key. Keys live
// under subtitles/ in the bucket but the route takes them without the prefix.
func SubtitleTrackURL(s3Key string) string {
	if s3Key == "" {
		return ""
	}
	return "/api/subtitles/" + url.PathEscape(strings.TrimPrefix(s3Key, "subtitles/"))
}
