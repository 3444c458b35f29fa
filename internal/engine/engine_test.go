package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"oci_kiosk/model"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// newTestEngine builds a ready engine over the given forest with a fast action
// timer. The inactivity timeout is kept far above the tests' sleep windows so
// the reset cannot fire mid-assertion; the inactivity tests shorten it
// themselves. Pollers are not running; snapshots are applied directly.
func newTestEngine(t *testing.T, forest []*model.Node) *Engine {
	return newTestEngineTimeout(t, forest, time.Minute)
}

func newTestEngineTimeout(t *testing.T, forest []*model.Node, inactivity time.Duration) *Engine {
	t.Helper()
	e := New(Options{
		BaseURL:           "http://127.0.0.1:0",
		ActionDelay:       40 * time.Millisecond,
		InactivityTimeout: inactivity,
	})
	e.applyHome("https://cdn/home.mp4", "", forest)
	t.Cleanup(func() {
		e.mu.Lock()
		e.cancelActionLocked()
		e.cancelInactivityLocked()
		e.mu.Unlock()
	})
	return e
}

func testVVIP(name string) *model.VVIP {
	return &model.VVIP{
		ID:    bson.NewObjectID(),
		Name:  name,
		Video: model.Video{S3URL: "https://cdn/" + name + ".mp4"},
		Play:  true,
	}
}

func TestClickNodeShowsNodeVideo(t *testing.T) {
	child := makeNode("child")
	root := makeNode("root", child)
	root.Video = &model.Video{S3URL: "https://cdn/root.mp4"}
	e := newTestEngine(t, []*model.Node{root})

	e.ClickNode(root.ID.Hex())
	st := e.State()
	assert.Equal(t, ModeNode, st.Mode())
	assert.Same(t, root, st.CurrentNode)
	assert.Equal(t, "https://cdn/root.mp4", st.CurrentVideoURL)

	// child without a video keeps the current one
	e.ClickNode(child.ID.Hex())
	st = e.State()
	assert.Same(t, child, st.CurrentNode)
	assert.Equal(t, "https://cdn/root.mp4", st.CurrentVideoURL)
}

func TestClickUnknownNodeIgnored(t *testing.T) {
	e := newTestEngine(t, []*model.Node{makeNode("root")})
	e.ClickNode(bson.NewObjectID().Hex())
	assert.Equal(t, ModeHome, e.State().Mode())
}

func TestBackResolvesParent(t *testing.T) {
	leaf := makeNode("leaf")
	mid := makeNode("mid", leaf)
	mid.Video = &model.Video{S3URL: "https://cdn/mid.mp4"}
	root := makeNode("root", mid)
	e := newTestEngine(t, []*model.Node{root})

	e.ClickNode(mid.ID.Hex())
	e.ClickNode(leaf.ID.Hex())

	e.Back()
	st := e.State()
	assert.Same(t, mid, st.CurrentNode)
	assert.Equal(t, "https://cdn/mid.mp4", st.CurrentVideoURL)

	e.Back()
	st = e.State()
	assert.Same(t, root, st.CurrentNode)
	assert.Equal(t, "https://cdn/home.mp4", st.CurrentVideoURL, "parent without video falls back to home")

	// root has no parent -> home
	e.Back()
	assert.Equal(t, ModeHome, e.State().Mode())
}

func TestHomeResetIdempotent(t *testing.T) {
	root := makeNode("root")
	e := newTestEngine(t, []*model.Node{root})
	e.ClickNode(root.ID.Hex())

	e.GoHome()
	first := e.State()
	e.GoHome()
	second := e.State()

	// HomeVideoKey is a video-restart hint and changes on purpose; every
	// navigational field must be unchanged by the second reset.
	assert.Nil(t, second.CurrentNode)
	assert.Equal(t, first.CurrentNode, second.CurrentNode)
	assert.Equal(t, first.CurrentVideoURL, second.CurrentVideoURL)
	assert.Equal(t, first.OverlayOpen, second.OverlayOpen)
	assert.Equal(t, first.SelectedSpeaker, second.SelectedSpeaker)
	assert.Equal(t, first.SlideIndex, second.SlideIndex)
}

func TestAutoOverlayAfterVideoStart(t *testing.T) {
	root := makeNode("root")
	root.Action = &model.Action{Type: model.ActionImage, S3URL: "https://cdn/a.png"}
	e := newTestEngine(t, []*model.Node{root})

	e.ClickNode(root.ID.Hex())
	e.VideoStarted()
	assert.False(t, e.State().OverlayOpen, "overlay opens only after the delay")

	assert.Eventually(t, func() bool {
		return e.State().OverlayOpen
	}, waitFor, tick)
	assert.Equal(t, ModeOverlay, e.State().Mode())
}

func TestAutoOverlayNotScheduledWithoutAction(t *testing.T) {
	root := makeNode("root")
	e := newTestEngine(t, []*model.Node{root})

	e.ClickNode(root.ID.Hex())
	e.VideoStarted()

	time.Sleep(3 * e.opts.ActionDelay)
	assert.False(t, e.State().OverlayOpen)
}

func TestAutoOverlayCancelledOnNavigation(t *testing.T) {
	other := makeNode("other")
	root := makeNode("root")
	root.Action = &model.Action{Type: model.ActionImage, S3URL: "https://cdn/a.png"}
	e := newTestEngine(t, []*model.Node{root, other})

	e.ClickNode(root.ID.Hex())
	e.VideoStarted()
	e.ClickNode(other.ID.Hex()) // supersedes the pending overlay

	time.Sleep(3 * e.opts.ActionDelay)
	st := e.State()
	assert.False(t, st.OverlayOpen, "stale timer must not fire against the new node")
	assert.Same(t, other, st.CurrentNode)
}

func TestInactivityResetsToHome(t *testing.T) {
	root := makeNode("root")
	e := newTestEngineTimeout(t, []*model.Node{root}, 80*time.Millisecond)
	e.mu.Lock()
	e.startInactivityLocked()
	e.mu.Unlock()

	e.ClickNode(root.ID.Hex())
	require.Equal(t, ModeNode, e.State().Mode())

	assert.Eventually(t, func() bool {
		return e.State().Mode() == ModeHome
	}, waitFor, tick)
}

func TestInactivityDoesNotEndVVIP(t *testing.T) {
	e := newTestEngineTimeout(t, []*model.Node{makeNode("root")}, 80*time.Millisecond)
	e.mu.Lock()
	e.startInactivityLocked()
	e.mu.Unlock()

	e.applyVVIP(testVVIP("minister"))
	require.Equal(t, ModeVVIP, e.State().Mode())

	time.Sleep(3 * e.opts.InactivityTimeout)
	assert.Equal(t, ModeVVIP, e.State().Mode(), "only the poll ends VVIP playback")
}

func TestVVIPTakeoverAndReturn(t *testing.T) {
	root := makeNode("root")
	root.Action = &model.Action{Type: model.ActionImage, S3URL: "https://cdn/a.png"}
	e := newTestEngine(t, []*model.Node{root})

	e.ClickNode(root.ID.Hex())
	e.VideoStarted()

	v := testVVIP("chairman")
	e.applyVVIP(v)
	st := e.State()
	assert.Equal(t, ModeVVIP, st.Mode())
	assert.Nil(t, st.CurrentNode, "takeover discards node selection")
	assert.Equal(t, v.Video.S3URL, st.CurrentVideoURL)

	// the pending overlay timer was discarded by the takeover
	time.Sleep(3 * e.opts.ActionDelay)
	assert.False(t, e.State().OverlayOpen)

	// poll reports null -> home with VVIP cleared
	e.applyVVIP(nil)
	st = e.State()
	assert.Equal(t, ModeHome, st.Mode())
	assert.Nil(t, st.VVIP)
	assert.Equal(t, "https://cdn/home.mp4", st.CurrentVideoURL)
}

func TestVVIPRepeatSnapshotIsNoop(t *testing.T) {
	e := newTestEngine(t, []*model.Node{makeNode("root")})

	v := testVVIP("chairman")
	e.applyVVIP(v)
	key := e.State().HomeVideoKey

	e.applyVVIP(v)
	assert.Equal(t, key, e.State().HomeVideoKey)
	assert.Equal(t, ModeVVIP, e.State().Mode())

	// a different VVIP switches playback
	w := testVVIP("president")
	e.applyVVIP(w)
	assert.Equal(t, w.Video.S3URL, e.State().CurrentVideoURL)
}

func TestManualOverrideWins(t *testing.T) {
	items := []model.AgendaItem{
		{ID: bson.NewObjectID(), Name: "first", StartTime: "09:00", EndTime: "09:30"},
		{ID: bson.NewObjectID(), Name: "second", StartTime: "10:00", EndTime: "10:30", IsActive: true},
	}
	e := newTestEngine(t, nil)

	// the active endpoint disagrees; the explicit toggle in the list wins
	e.applyAgenda(items, &items[0], nil)
	st := e.State()
	require.NotNil(t, st.ActiveSpeaker)
	assert.Equal(t, "second", st.ActiveSpeaker.Name)

	marquee := st.MarqueeSpeakers()
	assert.Len(t, marquee, 1)
	assert.Equal(t, "first", marquee[0].Name)
}

func TestAgendaSnapshotReplacesSpeakerList(t *testing.T) {
	e := newTestEngine(t, nil)
	first := []model.AgendaItem{{ID: bson.NewObjectID(), Name: "only", StartTime: "09:00", EndTime: "09:30"}}
	e.applyAgenda(first, nil, nil)
	assert.Len(t, e.State().Speakers, 1)

	second := []model.AgendaItem{
		{ID: bson.NewObjectID(), Name: "a", StartTime: "09:00", EndTime: "09:30"},
		{ID: bson.NewObjectID(), Name: "b", StartTime: "09:30", EndTime: "10:00"},
	}
	e.applyAgenda(second, &second[0], &second[1])
	st := e.State()
	assert.Len(t, st.Speakers, 2)
	require.NotNil(t, st.NextSpeaker)
	assert.Equal(t, "b", st.NextSpeaker.Name)
}

func TestSelectSpeakerOpensOverlayAnywhere(t *testing.T) {
	root := makeNode("root")
	e := newTestEngine(t, []*model.Node{root})
	e.ClickNode(root.ID.Hex())

	spk := model.AgendaItem{ID: bson.NewObjectID(), Name: "Ada", InfoImageURL: "https://cdn/ada.png"}
	e.SelectSpeaker(spk)

	st := e.State()
	assert.Equal(t, ModeOverlay, st.Mode())
	out := RenderOverlay(st)
	assert.Equal(t, OverlaySpeakerImage, out.Kind)
}

func TestSlideshowWraps(t *testing.T) {
	root := makeNode("root")
	root.Action = &model.Action{
		Type: model.ActionSlideshow,
		Images: []model.Media{
			{S3URL: "https://cdn/1.png"},
			{S3URL: "https://cdn/2.png"},
			{S3URL: "https://cdn/3.png"},
		},
	}
	e := newTestEngine(t, []*model.Node{root})

	e.mu.Lock()
	e.st.CurrentNode = root
	e.st.OverlayOpen = true
	e.mu.Unlock()

	e.SlidePrev()
	st := e.State()
	assert.Equal(t, 2, st.SlideIndex, "previous from 0 wraps to the last slide")
	assert.Equal(t, -1, st.SlideDirection)

	e.SlideNext()
	assert.Equal(t, 0, e.State().SlideIndex, "next from the last slide wraps to 0")

	e.SlideTo(1)
	st = e.State()
	assert.Equal(t, 1, st.SlideIndex)
	assert.Equal(t, 1, st.SlideDirection)

	e.SlideTo(9)
	assert.Equal(t, 1, e.State().SlideIndex, "out-of-range index ignored")
}

func TestSlideControlsInertOutsideSlideshow(t *testing.T) {
	root := makeNode("root")
	root.Action = &model.Action{Type: model.ActionImage, S3URL: "u"}
	e := newTestEngine(t, []*model.Node{root})

	e.mu.Lock()
	e.st.CurrentNode = root
	e.st.OverlayOpen = true
	e.mu.Unlock()

	e.SlideNext()
	assert.Equal(t, 0, e.State().SlideIndex)
}
