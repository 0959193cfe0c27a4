package cmd

import (
	"context"
	"fmt"

	"version-counter/feature/versions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// countCmd counts the versions of a single resource without starting the server
var countCmd = &cobra.Command{
	Use:   "count <resource_name>",
	Short: "Print the number of stored versions of a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := versions.ValidateName(name); err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		store, err := rt.newStore(ctx)
		if err != nil {
			return err
		}

		svc := versions.NewService(store, rt.cfg.BucketInfo.Name, rt.logger.Named("versions"), nil)
		count, err := svc.CountVersions(ctx, name)
		if err != nil {
			rt.logger.Error("Error while listing resource versions", zap.String("resource", name), zap.Error(err))
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), count)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(countCmd)
}
