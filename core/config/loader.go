package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Load reads the configuration of profile from dir.
//
// A missing file starts from the profile defaults. When the bucket connection is
// absent or incomplete the operator is prompted for the missing fields. The
// complete configuration is written back before returning, so the next load
// does not prompt again. A malformed file is never replaced.
func Load(profile Profile, dir string, prompter Prompter, logger *zap.Logger) (*Config, error) {
	path := profile.Path(dir)

	partial, err := read(path, profile)
	if err != nil {
		return nil, err
	}
	if partial == nil {
		logger.Info("No configuration file found, using defaults",
			zap.String("path", path),
			zap.String("profile", string(profile)))
		partial = &partialConfig{
			BindAddr:    profile.DefaultBindAddr(),
			CorsOrigins: []string{},
		}
	}

	if err := partial.validate(); err != nil {
		return nil, parseError(path, err)
	}

	if missing := partial.missingBucketFields(); len(missing) > 0 {
		logger.Warn("Bucket connection is incomplete, prompting for missing fields",
			zap.String("path", path),
			zap.Strings("missing", missing))

		bucket, err := completeBucket(prompter, partial.BucketInfo, missing)
		if err != nil {
			return nil, ioError(path, err)
		}
		partial.BucketInfo = bucket
	}

	cfg := partial.promote(profile)
	if err := Save(cfg, path); err != nil {
		return nil, err
	}
	logger.Debug("Configuration persisted", zap.String("path", path))

	return cfg, nil
}

// Save writes cfg as TOML to path, creating the parent directory.
// The file holds credentials and is only readable by the owner.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return parseError(path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ioError(path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ioError(path, err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return ioError(path, err)
	}
	return nil
}

// read returns nil without error when no file exists at path.
func read(path string, profile Profile) (*partialConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, ioError(path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("bind-addr", profile.DefaultBindAddr())
	v.SetDefault("cors-origins", []string{})

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, parseError(path, err)
		}
		return nil, ioError(path, err)
	}

	var partial partialConfig
	if err := v.Unmarshal(&partial); err != nil {
		return nil, parseError(path, err)
	}
	return &partial, nil
}
