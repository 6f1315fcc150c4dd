package internal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"albumview/internal/api"
	"albumview/internal/layout"
	"albumview/internal/media"
	"albumview/internal/nav"
	"albumview/internal/player"
	"albumview/internal/screens"
	"albumview/internal/state"
	"albumview/internal/viewer"
)

// loadPhase tracks where the current album fetch cycle stands. Exactly one
// phase is visible at a time: a failed load never shows stale data next to
// the error.
type loadPhase int

const (
	loadLoading loadPhase = iota
	loadReady
	loadFailed
)

// loginField identifies which input of the login form has focus.
type loginField int

const (
	fieldUsername loginField = iota
	fieldPassword
)

// tileKind tags one entry of the flattened browse grid.
type tileKind int

const (
	tileFolder tileKind = iota
	tilePhoto
	tileVideo
)

// tile is one activatable entry in the browse grid: folders first, then
// photos, then videos, each slice in server order.
type tile struct {
	kind   tileKind
	folder media.Folder
	photo  media.Photo
	video  media.Video
}

// Model represents the complete application state for the albumview TUI.
// It implements the tea.Model interface.
type Model struct {
	screen     screens.Screen
	lastScreen screens.Screen

	// Display dimensions and derived layout
	width      int
	height     int
	selector   layout.Selector
	layoutMode layout.Mode

	cfg      *Config
	client   *api.Client
	resolver *media.Resolver
	log      zerolog.Logger

	// Login form state
	username  string
	password  string
	focus     loginField
	loginErr  string
	loggingIn bool

	// Browse state. fetchSeq is bumped on every path change; an album
	// response carrying an older sequence is discarded, which keeps the
	// visible listing pinned to the most recently requested path.
	path     string
	fetchSeq int
	phase    loadPhase
	listing  media.Listing
	tiles    []tile
	cursor   int
	notice   string

	viewer *viewer.Viewer
	player player.Player

	configReloads <-chan *Config
}

// NewModel creates the initial application model. The player and the config
// reload channel may be nil in tests.
func NewModel(cfg *Config, client *api.Client, resolver *media.Resolver, p player.Player, reloads <-chan *Config, logger zerolog.Logger) Model {
	m := Model{
		screen:        screens.ScreenLogin,
		width:         100,
		height:        30,
		selector:      layout.NewSelector(cfg.Breakpoint),
		cfg:           cfg,
		client:        client,
		resolver:      resolver,
		log:           logger,
		viewer:        viewer.New(p),
		player:        p,
		configReloads: reloads,
	}
	m.layoutMode = m.selector.Select(m.width)
	if cfg.Token != "" {
		// A persisted token means an existing session; skip the form.
		m.screen = screens.ScreenBrowse
		m.phase = loadLoading
	}
	return m
}

// Init implements tea.Model.Init() and starts the long-lived listeners plus
// the first album fetch when a session already exists.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.waitForPlayerEvent(),
		m.waitForConfigReload(),
	}
	if m.screen == screens.ScreenBrowse {
		cmds = append(cmds, m.fetchAlbum())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.Update() and routes every message: terminal
// events, fetch completions, player notifications, and config reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutMode = m.selector.Select(msg.Width)
		return m, nil

	case state.AlbumLoaded:
		return m.handleAlbumLoaded(msg)

	case state.LoginResult:
		return m.handleLoginResult(msg)

	case state.PlayerNotification:
		m.viewer.HandlePlayerEvent(msg.Event)
		return m, m.waitForPlayerEvent()

	case state.ConfigReloaded:
		return m.handleConfigReloaded(msg)

	case state.OpenFailed:
		m.log.Error().Err(msg.Err).Str("url", msg.URL).Msg("external open failed")
		m.notice = "Could not open externally"
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		switch m.screen {
		case screens.ScreenLogin:
			return m.updateLogin(msg)
		case screens.ScreenBrowse:
			return m.updateBrowse(msg)
		case screens.ScreenAbout:
			m.screen = m.lastScreen
			return m, nil
		}
	}
	return m, nil
}

// handleAlbumLoaded commits or discards one fetch completion.
func (m Model) handleAlbumLoaded(msg state.AlbumLoaded) (tea.Model, tea.Cmd) {
	if msg.Seq != m.fetchSeq {
		// A newer navigation superseded this fetch while it was in
		// flight. Intentionally silent: not a user-facing error.
		m.log.Debug().Int("seq", msg.Seq).Str("path", msg.Path).Msg("discarding stale album response")
		return m, nil
	}
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Str("path", msg.Path).Msg("album load failed")
		m.phase = loadFailed
		m.listing = media.Listing{}
		m.tiles = nil
		m.cursor = 0
		m.viewer.Reset()
		return m, nil
	}
	m.phase = loadReady
	m.listing = msg.Listing
	m.tiles = flattenListing(msg.Listing)
	m.cursor = 0
	m.viewer.SetListing(msg.Listing)
	m.log.Debug().
		Str("path", msg.Path).
		Int("folders", len(msg.Listing.Folders)).
		Int("photos", len(msg.Listing.Photos)).
		Int("videos", len(msg.Listing.Videos)).
		Msg("album loaded")
	return m, nil
}

// handleLoginResult finishes a login attempt: inline error on the form, or
// token persistence and the first album fetch.
func (m Model) handleLoginResult(msg state.LoginResult) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.Err != nil {
		if api.IsAuthError(msg.Err) {
			m.loginErr = "Invalid credentials"
		} else {
			m.loginErr = "Cannot reach server"
		}
		return m, nil
	}
	if msg.Token != "" {
		if err := m.cfg.SaveToken(msg.Token); err != nil {
			// The session still works for this run; only persistence
			// across restarts is lost.
			m.log.Error().Err(err).Msg("failed to persist token")
		}
	}
	m.password = ""
	m.loginErr = ""
	m.screen = screens.ScreenBrowse
	return m.navigateInto("")
}

// handleConfigReloaded applies an on-disk config change. A token that shows
// up while the login form is open counts as an external login.
func (m Model) handleConfigReloaded(msg state.ConfigReloaded) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.waitForConfigReload()}
	if msg.Token != m.client.Token() {
		m.client.SetToken(msg.Token)
		m.cfg.Token = msg.Token
		m.log.Info().Bool("token_present", msg.Token != "").Msg("session token changed on disk")
		if msg.Token != "" && m.screen == screens.ScreenLogin {
			m.screen = screens.ScreenBrowse
		}
		if m.screen == screens.ScreenBrowse {
			model, cmd := m.navigateInto(m.path)
			return model, tea.Batch(append(cmds, cmd)...)
		}
	}
	return m, tea.Batch(cmds...)
}

// updateLogin handles key input on the login form.
func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		if m.focus == fieldUsername {
			m.focus = fieldPassword
		} else {
			m.focus = fieldUsername
		}
		return m, nil

	case "enter":
		if m.loggingIn || m.username == "" {
			return m, nil
		}
		m.loggingIn = true
		m.loginErr = ""
		return m, m.login()

	case "backspace":
		field := m.focusedField()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			field := m.focusedField()
			*field += msg.String()
		}
		return m, nil
	}
}

func (m *Model) focusedField() *string {
	if m.focus == fieldUsername {
		return &m.username
	}
	return &m.password
}

// updateBrowse handles key input on the browse screen, including the viewer
// controls in the split layout.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.lastScreen = m.screen
		m.screen = screens.ScreenAbout
		return m, nil

	case "ctrl+l":
		return m.logout()

	case "esc", "backspace":
		if !nav.IsRoot(m.path) {
			return m.navigateInto(nav.Parent(m.path))
		}
		return m, nil

	case "up", "k":
		if len(m.tiles) == 0 {
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.tiles) - 1
		}
		return m, nil

	case "down", "j":
		if len(m.tiles) == 0 {
			return m, nil
		}
		if m.cursor < len(m.tiles)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
		return m, nil

	case "enter", " ":
		return m.activateTile()

	case "+", "=":
		m.viewer.ZoomIn()
		return m, nil

	case "-":
		m.viewer.ZoomOut()
		return m, nil

	case "0":
		m.viewer.ZoomReset()
		return m, nil

	case "p":
		if err := m.viewer.TogglePlay(); err != nil {
			m.log.Error().Err(err).Msg("play/pause failed")
			m.notice = "Could not start player"
		}
		return m, nil

	case "m":
		if err := m.viewer.ToggleMute(); err != nil {
			m.log.Error().Err(err).Msg("mute toggle failed")
		}
		return m, nil

	case "[":
		if err := m.viewer.SetVolume(m.viewer.Playback().Volume - 0.05); err != nil {
			m.log.Error().Err(err).Msg("volume change failed")
		}
		return m, nil

	case "]":
		if err := m.viewer.SetVolume(m.viewer.Playback().Volume + 0.05); err != nil {
			m.log.Error().Err(err).Msg("volume change failed")
		}
		return m, nil
	}
	return m, nil
}

// activateTile performs the action of the tile under the cursor: navigation
// for folders, selection for media in the split layout, external open in
// the compact layout.
func (m Model) activateTile() (tea.Model, tea.Cmd) {
	if m.phase != loadReady || m.cursor >= len(m.tiles) {
		return m, nil
	}
	t := m.tiles[m.cursor]
	switch t.kind {
	case tileFolder:
		return m.navigateInto(t.folder.Path)

	case tilePhoto:
		if m.layoutMode == layout.ModeCompact {
			return m, openExternal(t.photo.FullURL)
		}
		if m.viewer.SelectedKey() == t.photo.Key {
			// Activating the displayed photo again resets the zoom.
			m.viewer.ZoomReset()
			return m, nil
		}
		m.viewer.SelectPhoto(t.photo)
		return m, nil

	case tileVideo:
		if m.layoutMode == layout.ModeCompact {
			return m, openExternal(t.video.FullURL)
		}
		m.viewer.SelectVideo(t.video)
		return m, nil
	}
	return m, nil
}

// navigateInto replaces the current path and starts a fresh fetch cycle.
// The target is not validated up front; a bad path surfaces as a load
// error. Bumping fetchSeq invalidates any fetch still in flight.
func (m Model) navigateInto(path string) (tea.Model, tea.Cmd) {
	m.path = nav.Normalize(path)
	m.fetchSeq++
	m.phase = loadLoading
	m.cursor = 0
	m.tiles = nil
	m.listing = media.Listing{}
	m.viewer.Reset()
	m.log.Debug().Str("path", m.path).Int("seq", m.fetchSeq).Msg("navigating")
	return m, m.fetchAlbum()
}

// logout clears the persisted token and returns to the login form. The
// sequence bump invalidates any fetch still in flight so its result cannot
// land in the logged-out session.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.cfg.ClearToken(); err != nil {
		m.log.Error().Err(err).Msg("failed to clear token")
	}
	m.client.SetToken("")
	m.viewer.Reset()
	m.fetchSeq++
	m.screen = screens.ScreenLogin
	m.username = ""
	m.password = ""
	m.focus = fieldUsername
	m.loginErr = ""
	m.path = ""
	m.phase = loadLoading
	m.tiles = nil
	m.listing = media.Listing{}
	m.log.Info().Msg("logged out")
	return m, nil
}

// fetchAlbum issues the listing request for the current path. The sequence
// number is captured now; the completion message carries it back so stale
// responses can be told apart from current ones.
func (m Model) fetchAlbum() tea.Cmd {
	seq := m.fetchSeq
	path := m.path
	client := m.client
	resolver := m.resolver
	return func() tea.Msg {
		body, err := client.ListAlbum(context.Background(), path)
		if err != nil {
			return state.AlbumLoaded{Seq: seq, Path: path, Err: err}
		}
		listing, err := media.Normalize(body, resolver, client.Token())
		if err != nil {
			return state.AlbumLoaded{Seq: seq, Path: path, Err: &api.ParseError{Err: err}}
		}
		return state.AlbumLoaded{Seq: seq, Path: path, Listing: listing}
	}
}

// login submits the form credentials.
func (m Model) login() tea.Cmd {
	client := m.client
	username := m.username
	password := m.password
	return func() tea.Msg {
		token, err := client.Login(context.Background(), username, password)
		return state.LoginResult{Token: token, Err: err}
	}
}

// waitForPlayerEvent blocks on the player's event stream and forwards one
// notification into the update loop.
func (m Model) waitForPlayerEvent() tea.Cmd {
	if m.player == nil {
		return nil
	}
	events := m.player.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return state.PlayerNotification{Event: ev}
	}
}

// waitForConfigReload forwards one config-file change into the update loop.
func (m Model) waitForConfigReload() tea.Cmd {
	if m.configReloads == nil {
		return nil
	}
	reloads := m.configReloads
	return func() tea.Msg {
		cfg, ok := <-reloads
		if !ok {
			return nil
		}
		return state.ConfigReloaded{ServerURL: cfg.ServerURL, Token: cfg.Token}
	}
}

// openExternal hands a URL to the platform opener off the update loop.
func openExternal(url string) tea.Cmd {
	return func() tea.Msg {
		if err := player.OpenExternal(url); err != nil {
			return state.OpenFailed{URL: url, Err: err}
		}
		return nil
	}
}

// View implements tea.Model.View() and dispatches to the per-screen render
// functions in ui.go.
func (m Model) View() string {
	switch m.screen {
	case screens.ScreenLogin:
		return m.renderLogin()
	case screens.ScreenBrowse:
		return m.renderBrowse()
	case screens.ScreenAbout:
		return m.renderAbout()
	default:
		return ""
	}
}

// flattenListing builds the activatable tile list: folders, then photos,
// then videos, each preserving server order.
func flattenListing(l media.Listing) []tile {
	tiles := make([]tile, 0, len(l.Folders)+l.MediaCount())
	for _, f := range l.Folders {
		tiles = append(tiles, tile{kind: tileFolder, folder: f})
	}
	for _, p := range l.Photos {
		tiles = append(tiles, tile{kind: tilePhoto, photo: p})
	}
	for _, v := range l.Videos {
		tiles = append(tiles, tile{kind: tileVideo, video: v})
	}
	return tiles
}
