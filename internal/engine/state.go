package engine

import (
	"oci_kiosk/model"
)

// Mode is the coarse display state derived from State.
type Mode int

const (
	ModeLoading Mode = iota // home and tree not fetched yet
	ModeHome
	ModeNode
	ModeOverlay
	ModeVVIP
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeHome:
		return "home"
	case ModeNode:
		return "node"
	case ModeOverlay:
		return "overlay"
	case ModeVVIP:
		return "vvip"
	}
	return "unknown"
}

// State is everything the renderer needs for one frame of the kiosk. It is a
// value: the engine hands out copies, never the live struct.
type State struct {
	Ready bool

	HomeVideoURL    string
	HomeSubtitleKey string

	CurrentNode     *model.Node
	CurrentVideoURL string
	// HomeVideoKey changes whenever the display resets to home, so a renderer
	// can restart the looping home video.
	HomeVideoKey int

	OverlayOpen     bool
	SelectedSpeaker *model.AgendaItem

	Speakers      []model.AgendaItem
	ActiveSpeaker *model.AgendaItem
	NextSpeaker   *model.AgendaItem

	VVIP *model.VVIP

	SlideIndex     int
	SlideDirection int // -1 previous, +1 next; animation hint only
}

// Mode derives the coarse state. A playing VVIP wins over everything, then
// an open overlay, then node view.
func (s State) Mode() Mode {
	switch {
	case !s.Ready:
		return ModeLoading
	case s.VVIP != nil:
		return ModeVVIP
	case s.OverlayOpen:
		return ModeOverlay
	case s.CurrentNode != nil:
		return ModeNode
	default:
		return ModeHome
	}
}

// VisibleNodes returns the buttons overlaid on the video: the current node's
// children, or the top-level nodes on home. Nothing while a VVIP plays.
func (s State) VisibleNodes(index *TreeIndex) []*model.Node {
	if s.VVIP != nil || index == nil {
		return nil
	}
	if s.CurrentNode != nil {
		return s.CurrentNode.Children
	}
	return index.Roots()
}

// MarqueeSpeakers is the bottom strip: every speaker except the active one.
func (s State) MarqueeSpeakers() []model.AgendaItem {
	if s.ActiveSpeaker == nil {
		return s.Speakers
	}
	out := make([]model.AgendaItem, 0, len(s.Speakers))
	for _, spk := range s.Speakers {
		if spk.ID != s.ActiveSpeaker.ID {
			out = append(out, spk)
		}
	}
	return out
}
