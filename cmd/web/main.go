package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/shelfshare/web/app"
	"github.com/Astemirdum/shelfshare/web/config"
)

// @title ShelfShare web
// @version 1.0
// @description Server-rendered ShelfShare client with route gate and API relay.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", zap.Error(err))
	}
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shelfshare",
		Short:        "ShelfShare web front end and API relay",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), gateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var (
		level        string
		writeTimeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zapcore.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg := config.NewConfig(
				config.WithLogLevel(lvl),
				config.WithWriteTimeout(writeTimeout),
			)
			app.Run(cfg)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "log-level", zapcore.DebugLevel.String(), "log level, LOG_LEVEL overrides it")
	cmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "response write timeout, HTTP_WRITE overrides it")
	return cmd
}

// gateCmd prints what the route gate would do for a path, with or without a session cookie.
func gateCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "gate PATH...",
		Short: "Show the gate decision for request paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewGateConfig()
			if err != nil {
				return err
			}
			return app.ExplainGate(cmd.OutOrStdout(), cfg, token, args...)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "session cookie value to assume")
	return cmd
}
