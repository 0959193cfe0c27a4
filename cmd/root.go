package cmd

import (
	"fmt"
	"os"
	"strings"

	"version-counter/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes the environment variables that override flags
// (VERSIONCOUNT_PROFILE, VERSIONCOUNT_CONFIG_DIR, ...).
const EnvPrefix = "VERSIONCOUNT"

// settings resolves flags, environment variables and .env values.
var settings = viper.New()

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "version-counter",
	Short: "Resource version counter",
	Long: `Version Counter answers how many stored versions exist for a resource
by listing the objects under its prefix in an object storage bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Ignore error if file doesn't exist (e.g. production)
		_ = godotenv.Overload(".env")
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("profile", "development", "configuration profile (development, production)")
	flags.String("config-dir", "config", "directory holding the profile configuration files")
	flags.String("log-dir", "logs", "directory receiving the dated log files (empty disables file logging)")
	flags.String("log-level", "", "override the profile log level (debug, info, warn, error)")

	for _, name := range []string{"profile", "config-dir", "log-dir", "log-level"} {
		_ = settings.BindPFlag(name, flags.Lookup(name))
	}

	// Map environment variables to keys (e.g. VERSIONCOUNT_CONFIG_DIR -> config-dir)
	settings.SetEnvPrefix(EnvPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
}
