package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bludbourne/assets"
	"github.com/milk9111/bludbourne/config"
	"github.com/milk9111/bludbourne/levels"
	"github.com/milk9111/bludbourne/obj"
	"github.com/milk9111/bludbourne/prefabs"
	"github.com/milk9111/bludbourne/screen"
)

func main() {
	configPath := flag.String("config", "", "path to a config yaml overriding the defaults")
	debug := flag.Bool("debug", false, "enable debug logging, overlay and hitboxes")
	mapName := flag.String("map", "", "map to start on (TOP_WORLD, TOWN, CASTLE_OF_DOOM)")
	watch := flag.Bool("watch", false, "reload maps and prefabs when they change on disk")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *mapName != "" {
		cfg.Maps.Default = *mapName
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid start map", "map", *mapName, "error", err)
			os.Exit(1)
		}
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		slog.Error("failed to load player prefab", "error", err)
		os.Exit(1)
	}

	am := assets.NewManager(assets.FS(), logger)
	am.SetLoader(assets.KindMap, levels.Loader)
	maps := obj.NewMapManager(am, cfg.Maps.Paths, cfg.Maps.Default, logger)

	ctx := &screen.Context{
		Config:       cfg,
		Assets:       am,
		Maps:         maps,
		Player:       spec,
		Logger:       logger,
		ShowOverlay:  *debug || cfg.Debug.Overlay,
		ShowHitboxes: *debug || cfg.Debug.Hitboxes,
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(watchDirs()...)
		if err != nil {
			slog.Warn("hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	game := NewGame(ctx, watcher)
	if err := game.SetScreen(screen.NewMainGameScreen(ctx)); err != nil {
		slog.Error("failed to show main screen", "error", err)
		os.Exit(1)
	}
	defer game.Dispose()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}

// watchDirs returns the on-disk asset directories that exist.
func watchDirs() []string {
	candidates := []string{
		prefabs.DiskDir,
		filepath.Join(assets.DiskDir, "maps"),
	}
	var dirs []string
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
