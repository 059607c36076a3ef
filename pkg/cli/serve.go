package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/cli/config"
	controller "github.com/secmon-lab/embiscope/pkg/controller/http"
	slackCtrl "github.com/secmon-lab/embiscope/pkg/controller/slack"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
		slackCfg     config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the EMBI HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting embiscope server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			embiUC, err := newEMBI(ctx, &datasetCfg, repo)
			if err != nil {
				return err
			}

			var opts []controller.Option
			if slackCfg.IsCommandEnabled() {
				opts = append(opts, controller.WithSlackHandler(
					slackCtrl.NewHandler(slackCfg.SigningSecret, slackCfg.DashboardURL, embiUC)))
			} else {
				logger.Info("Slack signing secret not set, slash command disabled")
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, embiUC, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
