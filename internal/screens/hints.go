package screens

// Key hint lines shown in the footer of each screen.
var (
	// LoginHints are shown under the login form.
	LoginHints = "tab: switch field • enter: sign in • ctrl+c: quit"

	// BrowseHints are shown under the browse grid in the split layout.
	BrowseHints = "↑/↓: move • enter: open • esc: back • +/-/0: zoom • p: play/pause • m: mute • [/]: volume • ?: about • ctrl+l: logout • q: quit"

	// BrowseCompactHints are shown in the compact layout, where media
	// opens externally instead of in the viewer pane.
	BrowseCompactHints = "↑/↓: move • enter: open • esc: back • ?: about • ctrl+l: logout • q: quit"

	// AboutHints are shown on the about screen.
	AboutHints = "any key: back"
)

// Hints returns the footer hint line for a screen. The compact flag only
// matters on the browse screen.
func Hints(s Screen, compact bool) string {
	switch s {
	case ScreenLogin:
		return LoginHints
	case ScreenBrowse:
		if compact {
			return BrowseCompactHints
		}
		return BrowseHints
	case ScreenAbout:
		return AboutHints
	default:
		return ""
	}
}
