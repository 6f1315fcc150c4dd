// Package state defines the messages that carry asynchronous results back
// into the application's update loop.
package state

import (
	"albumview/internal/media"
	"albumview/internal/player"
)

// AlbumLoaded reports completion of one album fetch. Seq is the fetch
// sequence number captured when the fetch was issued; the model discards
// the message if the sequence has moved on, so a stale response for an
// abandoned path can never overwrite the current listing.
type AlbumLoaded struct {
	Seq     int
	Path    string
	Listing media.Listing
	Err     error
}

// LoginResult reports completion of a login attempt. Token may be empty on
// success for cookie-session deployments.
type LoginResult struct {
	Token string
	Err   error
}

// PlayerNotification wraps one event from the playback surface.
type PlayerNotification struct {
	Event player.Event
}

// ConfigReloaded carries a freshly reloaded configuration after the config
// file changed on disk.
type ConfigReloaded struct {
	ServerURL string
	Token     string
}

// OpenFailed reports that handing a URL to the external opener failed.
type OpenFailed struct {
	URL string
	Err error
}
