// Package main implements the entry point for albumview.
//
// Startup order matters: configuration first (it holds the server URL and
// any persisted session token), then the file logger (stdout belongs to the
// TUI), then the config watcher and the external player, and finally the
// Bubble Tea program. A missing or unreadable config is fatal; a missing
// log file is not.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"albumview/internal"
	"albumview/internal/api"
	"albumview/internal/logging"
	"albumview/internal/media"
	"albumview/internal/player"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Println(internal.GetFullVersionString())
			return
		case "--help", "-h":
			printUsage()
			return
		default:
			fmt.Printf("unknown argument: %s\n\n", arg)
			printUsage()
			os.Exit(2)
		}
	}

	cfg, err := internal.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.ServerURL == "" {
		fmt.Printf("❌ No album server configured. Set [server] url in %s\n", cfg.Path())
		os.Exit(1)
	}

	logger, logCloser, err := logging.New(filepath.Join(filepath.Dir(cfg.Path()), "albumview.log"))
	if err != nil {
		// Run without logs rather than refusing to start.
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}
	logger.Info().Str("version", internal.GetVersionString()).Str("server", cfg.ServerURL).Msg("starting")

	reloads, stopWatcher, err := internal.WatchConfig(cfg.Path(), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("config watcher unavailable")
		reloads = nil
	} else {
		defer stopWatcher()
	}

	ext := player.NewExternal(cfg.PlayerBinary, logger)
	defer ext.Close()

	client := api.NewClient(cfg.ServerURL, cfg.Token, logger)
	resolver := media.NewResolver(cfg.ServerURL)

	m := internal.NewModel(cfg, client, resolver, ext, reloads, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("TUI exited with error")
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(internal.GetAppTitle())
	fmt.Println()
	fmt.Println("Usage: albumview [--version] [--help]")
	fmt.Println()
	fmt.Println("Configuration is read from ~/.config/albumview/config.ini;")
	fmt.Println("a starter file is written on first run.")
}
