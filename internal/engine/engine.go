package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"oci_kiosk/model"
)

// Options configures one engine instance. Zero durations fall back to the
// production cadences.
type Options struct {
	BaseURL     string
	HTTPTimeout time.Duration

	AgendaInterval    time.Duration // agenda poll, default 10s
	VVIPInterval      time.Duration // playing-VVIP poll, default 5s
	ActionDelay       time.Duration // video start -> auto overlay, default 5s
	InactivityTimeout time.Duration // last input -> reset to home, default 240s
	BootstrapRetry    time.Duration // home+tree fetch retry, default 5s

	// OnChange is invoked after every committed state change, outside the
	// engine lock, with a copy of the new state.
	OnChange func(State)
}

func (o *Options) defaults() {
	if o.AgendaInterval <= 0 {
		o.AgendaInterval = 10 * time.Second
	}
	if o.VVIPInterval <= 0 {
		o.VVIPInterval = 5 * time.Second
	}
	if o.ActionDelay <= 0 {
		o.ActionDelay = 5 * time.Second
	}
	if o.InactivityTimeout <= 0 {
		o.InactivityTimeout = 240 * time.Second
	}
	if o.BootstrapRetry <= 0 {
		o.BootstrapRetry = 5 * time.Second
	}
}

// Engine reconciles poll snapshots and user input into the display state.
type Engine struct {
	opts   Options
	client *Client

	mu    sync.Mutex
	st    State
	index *TreeIndex

	// Scheduled work is generation-checked: bumping the generation before a
	// timer fires makes the stale callback a no-op, so a superseded timer can
	// never mutate newer state.
	actionTimer     *time.Timer
	actionGen       uint64
	inactivityTimer *time.Timer
	inactivityGen   uint64

	wg sync.WaitGroup
}

func New(opts Options) *Engine {
	opts.defaults()
	return &Engine{
		opts:   opts,
		client: NewClient(opts.BaseURL, opts.HTTPTimeout),
		index:  NewTreeIndex(nil),
	}
}

// Run bootstraps home+tree, then keeps the agenda and VVIP pollers going
// until ctx is cancelled. It blocks.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.bootstrap(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	e.startInactivityLocked()
	e.mu.Unlock()

	e.wg.Add(2)
	go e.poll(ctx, "agenda", e.opts.AgendaInterval, e.pollAgenda)
	go e.poll(ctx, "vvip", e.opts.VVIPInterval, e.pollVVIP)

	<-ctx.Done()
	e.wg.Wait()

	e.mu.Lock()
	e.cancelActionLocked()
	e.cancelInactivityLocked()
	e.mu.Unlock()
	return nil
}

// State returns a copy of the current display state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st
}

// Index exposes the tree index for renderers resolving VisibleNodes.
func (e *Engine) Index() *TreeIndex {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// ---- user input ----

// Touch registers a raw input event (pointer move, touch) that carries no
// navigation meaning but still postpones the inactivity reset.
func (e *Engine) Touch() {
	e.mu.Lock()
	e.startInactivityLocked()
	e.mu.Unlock()
}

// ClickNode navigates to a node by id: a top-level node from home, or a
// child of the current node. Ignored while a VVIP plays.
func (e *Engine) ClickNode(id string) {
	e.mu.Lock()
	e.startInactivityLocked()
	if !e.st.Ready || e.st.VVIP != nil {
		e.mu.Unlock()
		return
	}
	n := e.index.Node(id)
	if n == nil {
		e.mu.Unlock()
		return
	}

	e.cancelActionLocked()
	if n.Video != nil && n.Video.S3URL != "" {
		e.st.CurrentVideoURL = n.Video.S3URL
	} else if e.st.CurrentVideoURL == "" {
		e.st.CurrentVideoURL = e.st.HomeVideoURL
	}
	e.st.CurrentNode = n
	e.st.OverlayOpen = false
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// Back navigates up one level from an overlay or node view. With no
// resolvable parent it falls back to home.
func (e *Engine) Back() {
	e.mu.Lock()
	e.startInactivityLocked()

	cur := e.st.CurrentNode
	if cur == nil {
		e.resetHomeLocked()
		snap := e.st
		e.mu.Unlock()
		e.emit(snap)
		return
	}

	e.cancelActionLocked()
	parent := e.index.Parent(cur.ID.Hex())
	if parent == nil {
		e.resetHomeLocked()
	} else {
		e.st.CurrentNode = parent
		if parent.Video != nil && parent.Video.S3URL != "" {
			e.st.CurrentVideoURL = parent.Video.S3URL
		} else {
			e.st.CurrentVideoURL = e.st.HomeVideoURL
		}
		e.st.OverlayOpen = false
		e.st.SelectedSpeaker = nil
	}
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// GoHome resets the display to the home state. Safe to call repeatedly.
func (e *Engine) GoHome() {
	e.mu.Lock()
	e.startInactivityLocked()
	e.resetHomeLocked()
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// SelectSpeaker opens the overlay on a speaker's info image, regardless of
// the current node. Ignored while a VVIP plays.
func (e *Engine) SelectSpeaker(spk model.AgendaItem) {
	e.mu.Lock()
	e.startInactivityLocked()
	if e.st.VVIP != nil {
		e.mu.Unlock()
		return
	}
	e.cancelActionLocked()
	e.st.SelectedSpeaker = &spk
	e.st.OverlayOpen = true
	e.st.SlideIndex = 0
	e.st.SlideDirection = 0
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// CloseOverlay dismisses the overlay and returns to home, mirroring the
// kiosk's modal close behavior.
func (e *Engine) CloseOverlay() {
	e.mu.Lock()
	e.startInactivityLocked()
	e.resetHomeLocked()
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// VideoStarted tells the engine the current node's video began playing. If
// the node carries an action, the overlay opens ActionDelay later unless the
// node or video changes first.
func (e *Engine) VideoStarted() {
	e.mu.Lock()
	e.cancelActionLocked()

	n := e.st.CurrentNode
	if n == nil || n.Action == nil || e.st.VVIP != nil {
		e.mu.Unlock()
		return
	}

	e.st.SelectedSpeaker = nil
	gen := e.actionGen
	nodeID := n.ID.Hex()
	e.actionTimer = time.AfterFunc(e.opts.ActionDelay, func() {
		e.fireAction(gen, nodeID)
	})
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// SlideNext advances the slideshow, wrapping at the end.
func (e *Engine) SlideNext() {
	e.slide(func(idx, n int) (int, int) { return (idx + 1) % n, 1 })
}

// SlidePrev steps the slideshow back, wrapping at the start.
func (e *Engine) SlidePrev() {
	e.slide(func(idx, n int) (int, int) { return (idx - 1 + n) % n, -1 })
}

// SlideTo jumps straight to a slide index.
func (e *Engine) SlideTo(i int) {
	e.slide(func(idx, n int) (int, int) {
		if i < 0 || i >= n {
			return idx, 0
		}
		if i > idx {
			return i, 1
		}
		return i, -1
	})
}

func (e *Engine) slide(step func(idx, n int) (int, int)) {
	e.mu.Lock()
	e.startInactivityLocked()
	n := e.slideCountLocked()
	if n == 0 {
		e.mu.Unlock()
		return
	}
	e.st.SlideIndex, e.st.SlideDirection = step(e.st.SlideIndex, n)
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

func (e *Engine) slideCountLocked() int {
	if !e.st.OverlayOpen || e.st.SelectedSpeaker != nil {
		return 0
	}
	n := e.st.CurrentNode
	if n == nil || n.Action == nil || n.Action.Type != model.ActionSlideshow {
		return 0
	}
	return len(n.Action.Images)
}

// ---- poll snapshot application ----

func (e *Engine) applyHome(home string, subtitleKey string, tree []*model.Node) {
	e.mu.Lock()
	e.index = NewTreeIndex(tree)
	e.st.Ready = true
	e.st.HomeVideoURL = home
	e.st.HomeSubtitleKey = subtitleKey
	if e.st.CurrentNode == nil && e.st.VVIP == nil {
		e.st.CurrentVideoURL = home
	}
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// applyAgenda commits one agenda poll: the full speaker list plus the
// resolved active/next pair. The manual toggle was already given precedence
// when activeItem was computed; re-check locally so a stale active endpoint
// can never override an explicit toggle in the list.
func (e *Engine) applyAgenda(items []model.AgendaItem, activeItem, nextItem *model.AgendaItem) {
	var explicit *model.AgendaItem
	for i := range items {
		if items[i].IsActive {
			explicit = &items[i]
			break
		}
	}
	if explicit != nil {
		activeItem = explicit
	}

	e.mu.Lock()
	e.st.Speakers = items
	e.st.ActiveSpeaker = activeItem
	e.st.NextSpeaker = nextItem
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// applyVVIP commits one VVIP poll. A newly playing VVIP takes the screen
// over immediately, discarding any pending overlay timer and node selection;
// when the playing VVIP goes away the display returns home.
func (e *Engine) applyVVIP(vvip *model.VVIP) {
	e.mu.Lock()
	cur := e.st.VVIP

	switch {
	case vvip != nil:
		if cur != nil && cur.ID == vvip.ID && cur.Video.S3URL == vvip.Video.S3URL {
			e.mu.Unlock()
			return
		}
		e.cancelActionLocked()
		e.st.VVIP = vvip
		e.st.CurrentVideoURL = vvip.Video.S3URL
		e.st.CurrentNode = nil
		e.st.OverlayOpen = false
		e.st.SelectedSpeaker = nil

	case cur != nil:
		e.st.VVIP = nil
		e.resetHomeLocked()

	default:
		e.mu.Unlock()
		return
	}

	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

// ---- timers ----

func (e *Engine) fireAction(gen uint64, nodeID string) {
	e.mu.Lock()
	if gen != e.actionGen {
		e.mu.Unlock()
		return
	}
	n := e.st.CurrentNode
	if n == nil || n.ID.Hex() != nodeID || e.st.VVIP != nil {
		e.mu.Unlock()
		return
	}
	e.st.OverlayOpen = true
	e.st.SlideIndex = 0
	e.st.SlideDirection = 0
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

func (e *Engine) fireInactivity(gen uint64) {
	e.mu.Lock()
	if gen != e.inactivityGen {
		e.mu.Unlock()
		return
	}
	e.startInactivityLocked()
	// VVIP playback is exempt from the inactivity reset; it ends only when
	// the poll reports it gone.
	if e.st.VVIP != nil {
		e.mu.Unlock()
		return
	}
	e.resetHomeLocked()
	snap := e.st
	e.mu.Unlock()
	e.emit(snap)
}

func (e *Engine) cancelActionLocked() {
	e.actionGen++
	if e.actionTimer != nil {
		e.actionTimer.Stop()
		e.actionTimer = nil
	}
}

func (e *Engine) cancelInactivityLocked() {
	e.inactivityGen++
	if e.inactivityTimer != nil {
		e.inactivityTimer.Stop()
		e.inactivityTimer = nil
	}
}

func (e *Engine) startInactivityLocked() {
	e.cancelInactivityLocked()
	gen := e.inactivityGen
	e.inactivityTimer = time.AfterFunc(e.opts.InactivityTimeout, func() {
		e.fireInactivity(gen)
	})
}

// resetHomeLocked is the single way back to the home state: no node, home
// video looping, overlay closed, speaker deselected.
func (e *Engine) resetHomeLocked() {
	e.cancelActionLocked()
	e.st.CurrentNode = nil
	e.st.CurrentVideoURL = e.st.HomeVideoURL
	e.st.OverlayOpen = false
	e.st.SelectedSpeaker = nil
	e.st.SlideIndex = 0
	e.st.SlideDirection = 0
	e.st.HomeVideoKey++
}

func (e *Engine) emit(snap State) {
	if e.opts.OnChange != nil {
		e.opts.OnChange(snap)
	}
}

// bootstrap fetches home and tree until both land, keeping the display in
// the loading state meanwhile.
func (e *Engine) bootstrap(ctx context.Context) error {
	for {
		home, err := e.client.FetchHome(ctx)
		if err == nil {
			var tree []*model.Node
			tree, err = e.client.FetchTree(ctx)
			if err == nil {
				var videoURL string
				var subtitleKey string
				if home.Video != nil {
					videoURL = home.Video.S3URL
				}
				if home.Subtitle != nil {
					subtitleKey = home.Subtitle.S3Key
				}
				e.applyHome(videoURL, subtitleKey, tree)
				return nil
			}
		}
		log.Printf("engine: bootstrap fetch failed: %v", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.opts.BootstrapRetry):
		}
	}
}
