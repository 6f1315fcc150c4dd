package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"albumview/internal/layout"
	"albumview/internal/nav"
	"albumview/internal/screens"
	"albumview/internal/viewer"
)

// Styles
var (
	// Tokyo Night inspired palette
	primaryColor    = lipgloss.Color("#7aa2f7") // blue
	accentColor     = lipgloss.Color("#f7768e") // red/pink
	successColor    = lipgloss.Color("#9ece6a") // green
	textColor       = lipgloss.Color("#c0caf5") // foreground
	dimColor        = lipgloss.Color("#565f89") // comment
	backgroundColor = lipgloss.Color("#1a1b26") // background

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	tileStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(textColor)

	selectedTileStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Background(primaryColor).
				Foreground(backgroundColor).
				Bold(true)

	activeTileStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(primaryColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(accentColor).
			Bold(true).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	viewerPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(1, 2)

	inputStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(dimColor)

	focusedInputStyle = inputStyle.
				BorderForeground(primaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true).
			MarginTop(1)
)

// sidebarWidth is the fixed width of the browse list in the split layout.
const sidebarWidth = 38

// renderLogin draws the centered login form with any inline error.
func (m Model) renderLogin() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(FormatTitle(AppName)) + "\n")
	s.WriteString(dimStyle.Render(AppDesc) + "\n\n")

	s.WriteString(m.renderLoginField("Username", m.username, m.focus == fieldUsername, false) + "\n")
	s.WriteString(m.renderLoginField("Password", m.password, m.focus == fieldPassword, true) + "\n")

	if m.loginErr != "" {
		s.WriteString("\n" + errorStyle.Render(m.loginErr) + "\n")
	}
	if m.loggingIn {
		s.WriteString("\n" + dimStyle.Render("Signing in…") + "\n")
	}

	s.WriteString(helpStyle.Render(screens.Hints(screens.ScreenLogin, false)))

	content := borderStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderLoginField(label, value string, focused, mask bool) string {
	shown := value
	if mask {
		shown = strings.Repeat("•", len([]rune(value)))
	}
	if focused {
		shown += CurrentSymbols.InputCursor
	}
	line := fmt.Sprintf("%-9s %s", label+":", shown)
	if focused {
		return focusedInputStyle.Width(34).Render(line)
	}
	return inputStyle.Width(34).Render(line)
}

// renderBrowse draws the album browser: toolbar plus either the compact
// single-column list or the split list + viewer pane.
func (m Model) renderBrowse() string {
	toolbar := m.renderToolbar()
	help := helpStyle.Render(screens.Hints(screens.ScreenBrowse, m.layoutMode == layout.ModeCompact))

	listHeight := m.height - lipgloss.Height(toolbar) - lipgloss.Height(help) - 2
	if listHeight < 3 {
		listHeight = 3
	}

	var body string
	if m.layoutMode == layout.ModeCompact {
		body = m.renderTileList(m.width, listHeight)
	} else {
		sidebar := m.renderTileList(sidebarWidth, listHeight)
		pane := m.renderViewerPane(m.width-sidebarWidth-4, listHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", pane)
	}

	var s strings.Builder
	s.WriteString(toolbar + "\n")
	s.WriteString(body + "\n")
	if m.notice != "" {
		s.WriteString(errorStyle.Render(m.notice) + "\n")
	}
	s.WriteString(help)
	return s.String()
}

// renderToolbar draws the header: app title, current path, and a back hint
// when the path is off-root.
func (m Model) renderToolbar() string {
	title := titleStyle.Render(FormatTitle(AppName))
	path := pathStyle.Render(breadcrumb(m.path))
	parts := []string{title, " ", path}
	if !nav.IsRoot(m.path) {
		parts = append(parts, "  ", dimStyle.Render(CurrentSymbols.Back+" esc: back"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// breadcrumb renders the current path segment by segment, each decoded for
// display.
func breadcrumb(p string) string {
	if nav.IsRoot(p) {
		return "/"
	}
	segs := nav.Segments(p)
	for i, s := range segs {
		segs[i] = nav.Display(s)
	}
	return "/ " + strings.Join(segs, " / ")
}

// renderTileList draws the scrolling tile list with the cursor and, in the
// split layout, the active-selection marker.
func (m Model) renderTileList(width, height int) string {
	switch m.phase {
	case loadLoading:
		return dimStyle.Width(width).Height(height).Render("Loading…")
	case loadFailed:
		// One generic failure state; no stale tiles behind it.
		return lipgloss.NewStyle().Width(width).Height(height).
			Render(errorStyle.Render("Error loading."))
	}

	if len(m.tiles) == 0 {
		return dimStyle.Width(width).Height(height).Render("This folder is empty")
	}

	// Simple scroll window keeping the cursor visible.
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.tiles) {
		end = len(m.tiles)
	}

	var s strings.Builder
	for i := start; i < end; i++ {
		t := m.tiles[i]
		line := tileLabel(t)
		switch {
		case i == m.cursor:
			line = selectedTileStyle.Width(width).Render(CurrentSymbols.Cursor + " " + line)
		case m.layoutMode == layout.ModeSplit && t.kind != tileFolder && m.viewer.SelectedKey() == tileKey(t):
			line = activeTileStyle.Width(width).Render(CurrentSymbols.Active + " " + line)
		default:
			line = tileStyle.Width(width).Render("  " + line)
		}
		s.WriteString(line)
		if i < end-1 {
			s.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(s.String())
}

// tileLabel renders the icon and display name of one tile. Folder names may
// arrive percent-encoded and are decoded here, at display time only. Videos
// without a thumbnail get a placeholder marker instead of failing.
func tileLabel(t tile) string {
	switch t.kind {
	case tileFolder:
		return CurrentSymbols.Folder + " " + nav.Display(t.folder.Name)
	case tilePhoto:
		return CurrentSymbols.Photo + "  " + t.photo.Name
	case tileVideo:
		label := CurrentSymbols.Video + " " + t.video.Name
		if t.video.ThumbURL == "" {
			label += " " + dimStyle.Render("(no preview)")
		}
		return label
	default:
		return ""
	}
}

func tileKey(t tile) string {
	switch t.kind {
	case tilePhoto:
		return t.photo.Key
	case tileVideo:
		return t.video.Key
	default:
		return ""
	}
}

// renderViewerPane draws the right-hand viewer: photo details with the zoom
// indicator, or video details with playback state.
func (m Model) renderViewerPane(width, height int) string {
	if width < 20 {
		width = 20
	}

	var s strings.Builder
	switch m.viewer.State() {
	case viewer.StateEmpty:
		s.WriteString(dimStyle.Render("Select a photo or video on the left"))

	case viewer.StatePhoto:
		photo, _ := m.viewer.Photo()
		s.WriteString(titleStyle.Render(photo.Name) + "\n\n")
		s.WriteString(m.renderZoomBar() + "\n\n")
		s.WriteString(dimStyle.Render(photo.FullURL))

	case viewer.StateVideo:
		video, _ := m.viewer.Video()
		s.WriteString(titleStyle.Render(video.Name) + "\n\n")
		s.WriteString(m.renderPlaybackLine() + "\n\n")
		if video.ThumbURL == "" {
			s.WriteString(dimStyle.Render("No preview available") + "\n")
		}
		s.WriteString(dimStyle.Render("watch: "+video.WatchURL))
	}

	return viewerPaneStyle.Width(width).Height(height - 2).Render(s.String())
}

// renderZoomBar shows the current zoom factor and its position within the
// zoom range.
func (m Model) renderZoomBar() string {
	zoom := m.viewer.Zoom()
	steps := int((viewer.ZoomMax - viewer.ZoomMin) / viewer.ZoomStep)
	filled := int((zoom - viewer.ZoomMin) / viewer.ZoomStep)
	bar := FormatGauge(filled, steps)
	return fmt.Sprintf("%s %3.0f%%  %s", CurrentSymbols.Zoom, zoom*100, dimStyle.Render(bar))
}

// renderPlaybackLine shows play/pause, mute, and the volume bar, all fed
// from the player's own notifications.
func (m Model) renderPlaybackLine() string {
	pb := m.viewer.Playback()

	status := CurrentSymbols.Pause + " paused"
	if pb.Playing {
		status = statusStyle.Render(CurrentSymbols.Play + " playing")
	}

	mute := ""
	if pb.Muted {
		mute = "  " + CurrentSymbols.Muted + " muted"
	}

	volSteps := 10
	volFilled := int(pb.Volume*float64(volSteps) + 0.5)
	volBar := FormatGauge(volFilled, volSteps)

	return fmt.Sprintf("%s%s  vol %s %3.0f%%", status, mute, dimStyle.Render(volBar), pb.Volume*100)
}

// renderAbout draws version and key binding information.
func (m Model) renderAbout() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(FormatTitle(GetAppTitle())) + "\n\n")

	about := `Browse a self-hosted album server from the terminal.

Wide terminals show the album list next to a viewer pane;
narrow terminals show the list alone and open media in the
system's default application.

Powered by Bubble Tea & Lipgloss`

	s.WriteString(lipgloss.NewStyle().Foreground(textColor).Render(about) + "\n")
	s.WriteString(helpStyle.Render(screens.Hints(screens.ScreenAbout, false)))

	content := borderStyle.Width(min(m.width-8, 70)).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
