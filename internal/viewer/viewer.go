// Package viewer implements the state machine behind the media pane: the
// single selected item, its zoom level for photos, and its playback state
// for videos. Selection changes replace the whole per-item state; playback
// state is a cache of the player and is updated only from player events.
package viewer

import (
	"albumview/internal/media"
	"albumview/internal/player"
)

// State identifies what the viewer currently holds.
type State int

const (
	// StateEmpty means no media is selected. Terminal only when the
	// folder truly has no media.
	StateEmpty State = iota
	// StatePhoto means a photo is selected and zoom controls apply.
	StatePhoto
	// StateVideo means a video is selected and playback controls apply.
	StateVideo
)

// Zoom bounds for photo display. Zoom moves in ZoomStep increments from the
// 1.0 origin and is always clamped to [ZoomMin, ZoomMax].
const (
	ZoomMin     = 0.25
	ZoomMax     = 4.0
	ZoomStep    = 0.25
	ZoomDefault = 1.0
)

// Playback is the viewer's cached view of the player. It is never written
// directly by control operations; only HandlePlayerEvent updates it, so any
// control surface (in-app keys or the player's own window) ends up
// reflected here.
type Playback struct {
	Playing bool
	Muted   bool
	Volume  float64
}

func defaultPlayback() Playback {
	return Playback{Playing: false, Muted: false, Volume: 1.0}
}

// Viewer owns the viewer selection and its per-selection display state.
type Viewer struct {
	state    State
	photo    media.Photo
	video    media.Video
	zoom     float64
	playback Playback
	player   player.Player
}

// New creates an empty Viewer driving the given player.
func New(p player.Player) *Viewer {
	return &Viewer{
		state:    StateEmpty,
		zoom:     ZoomDefault,
		playback: defaultPlayback(),
		player:   p,
	}
}

// State returns the current viewer state.
func (v *Viewer) State() State { return v.state }

// Photo returns the selected photo when in StatePhoto.
func (v *Viewer) Photo() (media.Photo, bool) {
	return v.photo, v.state == StatePhoto
}

// Video returns the selected video when in StateVideo.
func (v *Viewer) Video() (media.Video, bool) {
	return v.video, v.state == StateVideo
}

// Zoom returns the current photo zoom factor.
func (v *Viewer) Zoom() float64 { return v.zoom }

// Playback returns the cached playback state.
func (v *Viewer) Playback() Playback { return v.playback }

// SelectedKey returns the key of the selected item, or "" when empty.
func (v *Viewer) SelectedKey() string {
	switch v.state {
	case StatePhoto:
		return v.photo.Key
	case StateVideo:
		return v.video.Key
	default:
		return ""
	}
}

// Reset drops the selection entirely. Called on path change, before the
// next listing arrives.
func (v *Viewer) Reset() {
	v.stopPlayer()
	v.state = StateEmpty
	v.photo = media.Photo{}
	v.video = media.Video{}
	v.resetItemState()
}

// SetListing applies the default selection for a freshly loaded listing:
// the first photo, else the first video, else nothing.
func (v *Viewer) SetListing(l media.Listing) {
	switch {
	case len(l.Photos) > 0:
		v.SelectPhoto(l.Photos[0])
	case len(l.Videos) > 0:
		v.SelectVideo(l.Videos[0])
	default:
		v.Reset()
	}
}

// SelectPhoto makes the given photo the viewer selection. Re-selecting the
// already-selected photo leaves all state untouched.
func (v *Viewer) SelectPhoto(p media.Photo) {
	if v.state == StatePhoto && v.photo.Key == p.Key {
		return
	}
	v.stopPlayer()
	v.state = StatePhoto
	v.photo = p
	v.video = media.Video{}
	v.resetItemState()
}

// SelectVideo makes the given video the viewer selection. Playback does not
// start until requested. Re-selecting the current video is a no-op.
func (v *Viewer) SelectVideo(vd media.Video) {
	if v.state == StateVideo && v.video.Key == vd.Key {
		return
	}
	v.stopPlayer()
	v.state = StateVideo
	v.video = vd
	v.photo = media.Photo{}
	v.resetItemState()
}

// ZoomIn raises the zoom by one step, clamped to ZoomMax.
func (v *Viewer) ZoomIn() {
	if v.state != StatePhoto {
		return
	}
	v.zoom = clampZoom(v.zoom + ZoomStep)
}

// ZoomOut lowers the zoom by one step, clamped to ZoomMin.
func (v *Viewer) ZoomOut() {
	if v.state != StatePhoto {
		return
	}
	v.zoom = clampZoom(v.zoom - ZoomStep)
}

// ZoomReset restores the default zoom regardless of the current value.
func (v *Viewer) ZoomReset() {
	if v.state != StatePhoto {
		return
	}
	v.zoom = ZoomDefault
}

// TogglePlay starts playback of the selected video if the player is paused,
// otherwise pauses it. The playing flag is not flipped here; it follows the
// player's own notification.
func (v *Viewer) TogglePlay() error {
	if v.state != StateVideo || v.player == nil {
		return nil
	}
	if v.player.Paused() {
		return v.player.Start(v.video.FullURL)
	}
	return v.player.TogglePlay()
}

// ToggleMute flips the player's mute flag. The cached flag follows the
// player's notification.
func (v *Viewer) ToggleMute() error {
	if v.state != StateVideo || v.player == nil {
		return nil
	}
	return v.player.SetMuted(!v.playback.Muted)
}

// SetVolume requests a new volume, clamped to [0, 1], on the player.
func (v *Viewer) SetVolume(volume float64) error {
	if v.state != StateVideo || v.player == nil {
		return nil
	}
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	return v.player.SetVolume(volume)
}

// HandlePlayerEvent folds one player notification into the cached playback
// state. Events arriving while no video is selected are stale and dropped.
func (v *Viewer) HandlePlayerEvent(ev player.Event) {
	if v.state != StateVideo {
		return
	}
	switch ev.Kind {
	case player.EventPlaying:
		v.playback.Playing = true
	case player.EventPaused:
		v.playback.Playing = false
	case player.EventVolume:
		v.playback.Volume = ev.Volume
		v.playback.Muted = ev.Muted
	}
}

func (v *Viewer) resetItemState() {
	v.zoom = ZoomDefault
	v.playback = defaultPlayback()
}

func (v *Viewer) stopPlayer() {
	if v.player != nil && v.state == StateVideo {
		v.player.Stop()
	}
}

func clampZoom(z float64) float64 {
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}
