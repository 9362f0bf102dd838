// Package main is the entry point for the bump-mapped terrain demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/bumpterrain/internal/config"
	"github.com/Faultbox/bumpterrain/internal/demo"
	"github.com/Faultbox/bumpterrain/internal/logger"
)

func main() {
	if err := run(); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("=== " + demo.Title + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	d, err := demo.New(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Run(); err != nil {
		return err
	}

	logger.Info("demo closed normally")
	return nil
}
