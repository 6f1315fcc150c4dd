// Package player abstracts the playback surface for videos. The player is
// the authoritative side of playback state: the application issues control
// calls but updates its own view of playing/muted/volume only from the
// event stream the player emits. External control of the same player (for
// example a window close or media keys) flows through the same events, so
// the application never diverges from reality.
package player

// EventKind classifies a player notification.
type EventKind int

const (
	// EventPlaying fires when playback actually starts or resumes.
	EventPlaying EventKind = iota
	// EventPaused fires when playback pauses or the player goes away.
	EventPaused
	// EventVolume fires when the effective volume or mute flag changes.
	EventVolume
)

// Event is one notification from the playback surface.
type Event struct {
	Kind   EventKind
	Volume float64
	Muted  bool
}

// Player is a controllable playback surface. Control calls are requests;
// the resulting state arrives asynchronously on Events.
type Player interface {
	// Start begins playback of the given URL, replacing any current one.
	Start(url string) error
	// TogglePlay pauses a playing player and resumes a paused one.
	TogglePlay() error
	// SetMuted requests the given mute flag.
	SetMuted(muted bool) error
	// SetVolume requests a volume in [0, 1]. Values outside the range
	// are clamped by the caller before they get here.
	SetVolume(volume float64) error
	// Stop ends playback without releasing the player.
	Stop() error
	// Paused reports whether the player is currently not playing.
	Paused() bool
	// Events delivers the player's own state notifications.
	Events() <-chan Event
	// Close stops playback and releases the player.
	Close() error
}
