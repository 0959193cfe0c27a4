package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

// configShowCmd loads the profile configuration (prompting for missing bucket
// settings) and prints it with credentials redacted.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Load and print the configuration (credentials redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		cfg := rt.cfg
		srv := cfg.Server()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "profile:      %s\n", cfg.Profile)
		fmt.Fprintf(out, "file:         %s\n", cfg.Profile.Path(settings.GetString("config-dir")))
		fmt.Fprintf(out, "bind-addr:    %s\n", cfg.BindAddr)
		fmt.Fprintf(out, "cors-origins: [%s] (%s)\n", strings.Join(cfg.CorsOrigins, ", "), srv.CORSMode())
		fmt.Fprintf(out, "bucket:       %s (%s)\n", cfg.BucketInfo.Name, cfg.BucketInfo.DriverName())
		fmt.Fprintf(out, "region:       %s\n", cfg.BucketInfo.Region.Region)
		fmt.Fprintf(out, "endpoint:     %s\n", cfg.BucketInfo.Region.Endpoint)
		fmt.Fprintf(out, "credentials:  %v\n", cfg.BucketInfo.Credentials)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	RootCmd.AddCommand(configCmd)
}
