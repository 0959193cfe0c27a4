package cmd

import (
	"context"
	"fmt"
	"os"

	"version-counter/core/config"
	"version-counter/core/logger"
	"version-counter/core/storage"

	"go.uber.org/zap"
)

// session is the result of the bootstrap phase.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

// bootstrap selects the profile, starts logging and loads the configuration,
// prompting the operator on the terminal when the bucket connection is missing.
// It runs before any request handling and may block on input.
func bootstrap() (*session, error) {
	profile, err := config.ParseProfile(settings.GetString("profile"))
	if err != nil {
		return nil, err
	}

	logCfg := profile.Log(settings.GetString("log-dir"))
	if level := settings.GetString("log-level"); level != "" {
		logCfg.Level = level
	}
	logg, err := logger.New(&logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	logg.Info("Loading configuration",
		zap.String("profile", string(profile)),
		zap.String("dir", settings.GetString("config-dir")))

	prompter := config.NewTerminalPrompter(os.Stdin, os.Stdout)
	cfg, err := config.Load(profile, settings.GetString("config-dir"), prompter, logg.Named("config"))
	if err != nil {
		logg.Error("Failed to load configuration", zap.Error(err))
		_ = logg.Sync()
		return nil, err
	}
	logg.Info("Loaded configuration", zap.Object("config", cfg))

	return &session{cfg: cfg, logger: logg}, nil
}

// newStore builds the storage client shared by every request.
func (s *session) newStore(ctx context.Context) (storage.Client, error) {
	client, err := storage.NewClient(ctx, s.cfg.BucketInfo)
	if err != nil {
		s.logger.Error("Failed to create storage client", zap.Error(err))
		return nil, err
	}
	return client, nil
}
