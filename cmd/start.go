package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"version-counter/core/loader"
	"version-counter/core/metrics"
	"version-counter/core/server"
	"version-counter/feature/versions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Version Counter API
// @version 1.0
// @description Counts stored versions of a resource in an object storage bucket.
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the version counter server",
	Long:  `Loads (or interactively completes) the configuration, connects to the bucket and starts the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Bootstrap: profile, logger, configuration
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		// 2. Initialize Storage (shared by every request)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		store, err := rt.newStore(ctx)
		if err != nil {
			return err
		}

		probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		exists, err := store.BucketExists(probeCtx, rt.cfg.BucketInfo.Name)
		cancel()
		switch {
		case err != nil:
			logg.Warn("Bucket probe failed", zap.String("bucket", rt.cfg.BucketInfo.Name), zap.Error(err))
		case !exists:
			logg.Warn("Bucket does not exist", zap.String("bucket", rt.cfg.BucketInfo.Name))
		}

		// 3. Initialize Fiber App
		srvCfg := rt.cfg.Server()
		m := metrics.New()
		app := server.New(srvCfg, logg.Named("http"), m)

		// 4. Load Features
		mgr := loader.NewManager()
		mgr.Register(versions.NewFeature(store, rt.cfg.BucketInfo.Name, logg.Named("versions"), m))
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Error("Failed to load features", zap.Error(err))
			return err
		}

		// 5. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("addr", srvCfg.BindAddr),
				zap.Stringer("cors", srvCfg.CORSMode()),
				zap.Strings("features", loaded))
			errCh <- app.Listen(srvCfg.BindAddr)
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			if err != nil {
				logg.Error("Server stopped with an error", zap.Error(err))
				return err
			}
			return nil
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
