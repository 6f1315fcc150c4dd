package player

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// External drives a standalone media player process (mpv by default). The
// terminal cannot render video itself, so playback happens in the external
// player's own window; this type tracks the process lifecycle and reports
// it back through the Event stream.
//
// Mute and volume are applied as launch flags. Changing them while a
// process is running restarts playback with the new flags, which keeps the
// process the single source of truth for what is audible.
type External struct {
	mu      sync.Mutex
	binary  string
	cmd     *exec.Cmd
	url     string
	volume  float64
	muted   bool
	paused  bool
	events  chan Event
	closed  bool
	log     zerolog.Logger
}

// DefaultPlayerBinary is the player launched for video playback when the
// config does not name another one.
const DefaultPlayerBinary = "mpv"

// NewExternal creates an External player using the given binary name.
func NewExternal(binary string, logger zerolog.Logger) *External {
	if binary == "" {
		binary = DefaultPlayerBinary
	}
	return &External{
		binary: binary,
		volume: 1.0,
		paused: true,
		events: make(chan Event, 8),
		log:    logger,
	}
}

// Start launches playback of url, stopping any current process first.
func (e *External) Start(url string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("player is closed")
	}
	e.stopLocked()
	e.url = url
	return e.launchLocked()
}

// TogglePlay stops a running player process and relaunches a stopped one
// with the last URL.
func (e *External) TogglePlay() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("player is closed")
	}
	if e.cmd != nil {
		e.stopLocked()
		return nil
	}
	if e.url == "" {
		return fmt.Errorf("nothing to play")
	}
	return e.launchLocked()
}

// SetMuted applies the mute flag. A running player is restarted so the flag
// takes effect immediately.
func (e *External) SetMuted(muted bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.muted == muted {
		return nil
	}
	e.muted = muted
	e.emit(Event{Kind: EventVolume, Volume: e.volume, Muted: e.muted})
	if e.cmd != nil {
		e.stopLocked()
		return e.launchLocked()
	}
	return nil
}

// SetVolume applies a volume in [0, 1], restarting a running player.
func (e *External) SetVolume(volume float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.volume == volume {
		return nil
	}
	e.volume = volume
	e.emit(Event{Kind: EventVolume, Volume: e.volume, Muted: e.muted})
	if e.cmd != nil {
		e.stopLocked()
		return e.launchLocked()
	}
	return nil
}

// Stop kills the current player process, keeping the player usable.
func (e *External) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	return nil
}

// Paused reports whether no player process is running.
func (e *External) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Events delivers process lifecycle and volume notifications.
func (e *External) Events() <-chan Event {
	return e.events
}

// Close stops playback and closes the event stream.
func (e *External) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.stopLocked()
	e.closed = true
	close(e.events)
	return nil
}

// launchLocked starts the player process for the current URL and flags.
// Callers hold e.mu.
func (e *External) launchLocked() error {
	args := []string{
		"--no-terminal",
		fmt.Sprintf("--volume=%d", int(e.volume*100)),
	}
	if e.muted {
		args = append(args, "--mute=yes")
	}
	args = append(args, e.url)

	cmd := exec.Command(e.binary, args...)
	if err := cmd.Start(); err != nil {
		e.log.Error().Err(err).Str("binary", e.binary).Msg("failed to launch player")
		return fmt.Errorf("launching %s: %w", e.binary, err)
	}
	e.cmd = cmd
	e.paused = false
	e.emit(Event{Kind: EventPlaying, Volume: e.volume, Muted: e.muted})
	e.log.Debug().Str("url", e.url).Msg("player started")

	go func() {
		cmd.Wait()
		e.mu.Lock()
		defer e.mu.Unlock()
		// The process may already have been replaced by a restart; only
		// the current one reports a pause.
		if e.cmd == cmd {
			e.cmd = nil
			e.paused = true
			e.emit(Event{Kind: EventPaused, Volume: e.volume, Muted: e.muted})
		}
	}()
	return nil
}

// stopLocked kills the current player process, if any. Callers hold e.mu.
func (e *External) stopLocked() {
	if e.cmd == nil {
		return
	}
	cmd := e.cmd
	e.cmd = nil
	e.paused = true
	if cmd.Process != nil {
		cmd.Process.Kill()
	}
	e.emit(Event{Kind: EventPaused, Volume: e.volume, Muted: e.muted})
}

// emit delivers an event without ever blocking the control path. Dropping
// an event under backpressure is safe: the next one carries full state.
func (e *External) emit(ev Event) {
	if e.closed {
		return
	}
	select {
	case e.events <- ev:
	default:
	}
}
