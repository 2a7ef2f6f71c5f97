package main

import (
	"context"
	"flag"
	"log"

	"github.com/Garsondee/Soccer-Tactics/internal/config"
	"github.com/Garsondee/Soccer-Tactics/internal/game"
	"github.com/Garsondee/Soccer-Tactics/internal/logging"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	var cfgPath, url, file string
	flag.StringVar(&cfgPath, "config", "", "YAML config file")
	flag.StringVar(&url, "url", "", "published roster CSV URL (overrides config)")
	flag.StringVar(&file, "file", "", "local roster CSV (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if url != "" {
		cfg.Source.URL = url
	}
	if file != "" {
		cfg.Source.File = file
		cfg.Source.URL = ""
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	session, err := game.NewSession(cfg, logger)
	if err != nil {
		logger.Fatal("building session", zap.Error(err))
	}
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := cfg.BuildSource()
	loader := source.NewLoader(src, logger.Named("loader"))
	defer loader.Close()
	logger.Info("starting", zap.String("source", src.String()), zap.String("formation", session.Formation()))

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(game.New(ctx, cfg, session, loader, logger)); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
