package internal

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"albumview/internal/api"
	"albumview/internal/media"
	"albumview/internal/screens"
	"albumview/internal/state"
	"albumview/internal/viewer"
)

func testConfig(t *testing.T, token string) *Config {
	t.Helper()
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.ini"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.ServerURL = "http://srv"
	if token != "" {
		if err := cfg.SaveToken(token); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func testModel(t *testing.T, token string) Model {
	t.Helper()
	cfg := testConfig(t, token)
	client := api.NewClient(cfg.ServerURL, cfg.Token, zerolog.Nop())
	resolver := media.NewResolver(cfg.ServerURL)
	return NewModel(cfg, client, resolver, nil, nil, zerolog.Nop())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestStartsOnLoginWithoutToken(t *testing.T) {
	m := testModel(t, "")
	if m.screen != screens.ScreenLogin {
		t.Errorf("screen = %v, want login", m.screen)
	}
}

func TestStartsOnBrowseWithPersistedToken(t *testing.T) {
	m := testModel(t, "tok")
	if m.screen != screens.ScreenBrowse {
		t.Errorf("screen = %v, want browse", m.screen)
	}
	if m.phase != loadLoading {
		t.Errorf("phase = %v, want loading", m.phase)
	}
}

func TestStaleFetchDiscarded(t *testing.T) {
	m := testModel(t, "tok")

	// Navigate A then B before A's fetch resolves.
	next, _ := m.navigateInto("/a")
	m = next.(Model)
	seqA := m.fetchSeq
	next, _ = m.navigateInto("/b")
	m = next.(Model)
	seqB := m.fetchSeq

	listingA := media.Listing{Photos: []media.Photo{{Name: "a.jpg", Key: "a"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: seqA, Path: "/a", Listing: listingA})
	if m.phase != loadLoading || len(m.tiles) != 0 {
		t.Fatal("stale response for /a was committed while /b is current")
	}

	listingB := media.Listing{Photos: []media.Photo{{Name: "b.jpg", Key: "b"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: seqB, Path: "/b", Listing: listingB})
	if m.phase != loadReady || len(m.tiles) != 1 || m.tiles[0].photo.Name != "b.jpg" {
		t.Fatalf("current response not committed: phase=%v tiles=%d", m.phase, len(m.tiles))
	}
}

func TestRootFolderOnlyListing(t *testing.T) {
	m := testModel(t, "tok")
	listing := media.Listing{Folders: []media.Folder{{Name: "2023", Path: "/2023"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "", Listing: listing})

	if len(m.tiles) != 1 || m.tiles[0].kind != tileFolder {
		t.Fatalf("tiles = %+v", m.tiles)
	}
	if m.viewer.State() != viewer.StateEmpty {
		t.Errorf("viewer state = %v, want empty", m.viewer.State())
	}
	// At root there is nothing to go back to; esc must not navigate.
	before := m.fetchSeq
	m, cmd := update(t, m, key("esc"))
	if m.fetchSeq != before || cmd != nil {
		t.Error("back offered at root")
	}
}

func TestFlatListingDefaultsToFirstPhoto(t *testing.T) {
	m := testModel(t, "tok")
	listing := media.Listing{Photos: []media.Photo{
		{Name: "a.jpg", FullURL: "http://srv/api/photo/a.jpg", Key: "a"},
		{Name: "b.jpg", FullURL: "http://srv/api/photo/b.jpg", Key: "b"},
	}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "/2023", Listing: listing})

	if m.viewer.State() != viewer.StatePhoto {
		t.Fatalf("viewer state = %v", m.viewer.State())
	}
	if m.viewer.SelectedKey() != "a" {
		t.Errorf("default selection = %q, want first photo", m.viewer.SelectedKey())
	}
	if m.viewer.Zoom() != viewer.ZoomDefault {
		t.Errorf("zoom = %v, want default", m.viewer.Zoom())
	}
}

func TestFolderActivationNavigates(t *testing.T) {
	m := testModel(t, "tok")
	listing := media.Listing{Folders: []media.Folder{{Name: "2023", Path: "/2023"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "", Listing: listing})

	m, cmd := update(t, m, key("enter"))
	if m.path != "/2023" {
		t.Errorf("path = %q", m.path)
	}
	if m.phase != loadLoading || cmd == nil {
		t.Error("activation did not start a fetch cycle")
	}
	if m.viewer.State() != viewer.StateEmpty {
		t.Error("viewer not reset on navigation")
	}
}

func TestBackNavigatesToParent(t *testing.T) {
	m := testModel(t, "tok")
	next, _ := m.navigateInto("/2023/summer")
	m = next.(Model)
	listing := media.Listing{}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: m.path, Listing: listing})

	m, cmd := update(t, m, key("esc"))
	if m.path != "/2023" {
		t.Errorf("path after back = %q", m.path)
	}
	if cmd == nil {
		t.Error("back did not trigger a fetch")
	}
}

func TestCompactActivationOpensExternally(t *testing.T) {
	m := testModel(t, "tok")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	listing := media.Listing{Photos: []media.Photo{{Name: "a.jpg", FullURL: "http://srv/api/photo/a.jpg", Key: "a"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "", Listing: listing})

	// Default selection still happens on load, but activating the tile in
	// the compact layout opens externally instead of re-selecting.
	m, cmd := update(t, m, key("enter"))
	if cmd == nil {
		t.Error("compact activation returned no open command")
	}
}

func TestLoginRejectedShowsInlineError(t *testing.T) {
	m := testModel(t, "")
	m.username = "alice"
	m.loggingIn = true

	m, _ = update(t, m, state.LoginResult{Err: &api.AuthError{Status: 401}})
	if m.screen != screens.ScreenLogin {
		t.Errorf("screen = %v, want login form still open", m.screen)
	}
	if m.loginErr != "Invalid credentials" {
		t.Errorf("loginErr = %q", m.loginErr)
	}
	if m.cfg.Token != "" {
		t.Errorf("token stored after rejection: %q", m.cfg.Token)
	}
}

func TestLoginSuccessPersistsTokenAndFetches(t *testing.T) {
	m := testModel(t, "")
	m.username = "alice"
	m.loggingIn = true

	m, cmd := update(t, m, state.LoginResult{Token: "fresh"})
	if m.screen != screens.ScreenBrowse {
		t.Errorf("screen = %v, want browse", m.screen)
	}
	if cmd == nil {
		t.Error("no fetch issued after login")
	}
	if m.cfg.Token != "fresh" {
		t.Errorf("token not persisted: %q", m.cfg.Token)
	}
	// Persisted on disk, not just in memory.
	reloaded, err := LoadConfigFrom(m.cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Token != "fresh" {
		t.Errorf("token on disk = %q", reloaded.Token)
	}
}

func TestLogoutClearsTokenAndReturnsToLogin(t *testing.T) {
	m := testModel(t, "tok")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	if m.screen != screens.ScreenLogin {
		t.Errorf("screen = %v, want login", m.screen)
	}
	reloaded, err := LoadConfigFrom(m.cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Token != "" {
		t.Errorf("token still on disk: %q", reloaded.Token)
	}
}

func TestLogoutInvalidatesInFlightFetch(t *testing.T) {
	m := testModel(t, "tok")
	next, _ := m.navigateInto("/private")
	m = next.(Model)
	seq := m.fetchSeq

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	// The fetch started before logout resolves now; its listing must not
	// land in the logged-out session.
	listing := media.Listing{Photos: []media.Photo{{Name: "secret.jpg", Key: "s"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: seq, Path: "/private", Listing: listing})
	if len(m.tiles) != 0 {
		t.Error("listing from before logout was committed")
	}
	if m.viewer.State() != viewer.StateEmpty {
		t.Errorf("viewer state = %v, want empty", m.viewer.State())
	}
}

func TestReactivatingDisplayedPhotoResetsZoom(t *testing.T) {
	m := testModel(t, "tok")
	listing := media.Listing{Photos: []media.Photo{
		{Name: "a.jpg", FullURL: "http://srv/api/photo/a.jpg", Key: "a"},
	}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "", Listing: listing})

	m, _ = update(t, m, key("+"))
	m, _ = update(t, m, key("+"))
	if m.viewer.Zoom() == viewer.ZoomDefault {
		t.Fatal("precondition: zoom unchanged after two steps in")
	}

	// Enter on the already-displayed photo resets the zoom instead of
	// re-selecting.
	m, _ = update(t, m, key("enter"))
	if m.viewer.Zoom() != viewer.ZoomDefault {
		t.Errorf("zoom = %v, want default after re-activation", m.viewer.Zoom())
	}
	if m.viewer.SelectedKey() != "a" {
		t.Errorf("selection changed to %q", m.viewer.SelectedKey())
	}
}

func TestLoadFailureShowsErrorWithoutStaleData(t *testing.T) {
	m := testModel(t, "tok")
	listing := media.Listing{Photos: []media.Photo{{Name: "a.jpg", Key: "a"}}}
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "", Listing: listing})

	next, _ := m.navigateInto("/broken")
	m = next.(Model)
	m, _ = update(t, m, state.AlbumLoaded{Seq: m.fetchSeq, Path: "/broken", Err: &api.NetworkError{Status: 500}})

	if m.phase != loadFailed {
		t.Errorf("phase = %v, want failed", m.phase)
	}
	if len(m.tiles) != 0 {
		t.Error("stale tiles rendered behind the error state")
	}
	if m.viewer.State() != viewer.StateEmpty {
		t.Error("viewer kept stale selection after failed load")
	}
}

func TestResizeSwitchesLayoutMode(t *testing.T) {
	m := testModel(t, "tok")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	wide := m.layoutMode
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	narrow := m.layoutMode
	if wide == narrow {
		t.Error("layout mode did not react to resize")
	}
}

func TestExternalTokenReloadAppliesLive(t *testing.T) {
	m := testModel(t, "")
	if m.screen != screens.ScreenLogin {
		t.Fatal("precondition: should start on login")
	}

	m, cmd := update(t, m, state.ConfigReloaded{ServerURL: "http://srv", Token: "provisioned"})
	if m.client.Token() != "provisioned" {
		t.Errorf("client token = %q", m.client.Token())
	}
	if m.screen != screens.ScreenBrowse {
		t.Errorf("screen = %v, want browse after external login", m.screen)
	}
	if cmd == nil {
		t.Error("no fetch issued after external token arrived")
	}
}
