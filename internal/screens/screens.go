// Package screens defines the application's screens and their static help
// text.
package screens

// Screen represents the different screens/views in the application.
type Screen int

const (
	// ScreenLogin is the username/password form shown while no session
	// exists.
	ScreenLogin Screen = iota
	// ScreenBrowse is the album browser, optionally with the viewer pane.
	ScreenBrowse
	// ScreenAbout shows version and key binding information.
	ScreenAbout
)

// String returns the string representation of a screen.
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenBrowse:
		return "Browse"
	case ScreenAbout:
		return "About"
	default:
		return "Unknown"
	}
}
