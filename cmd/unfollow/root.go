package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anatolykoptev/go-unfollow"
	"github.com/anatolykoptev/go-unfollow/twitterapi"
)

const (
	exitOK          = 0
	exitError       = 1
	exitAuth        = 2
	exitFetch       = 3
	exitPersistence = 4
)

// execute runs the CLI with args and returns the process exit code.
func execute(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	unfollow.NewReporter(os.Stdout).Failure(err)
	return exitCode(err)
}

func exitCode(err error) int {
	var (
		authErr  *unfollow.AuthenticationError
		fetchErr *unfollow.FetchError
		persErr  *unfollow.PersistenceError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &authErr):
		return exitAuth
	case errors.As(err, &fetchErr):
		return exitFetch
	case errors.As(err, &persErr):
		return exitPersistence
	default:
		return exitError
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "unfollow",
		Short:         "Find accounts you follow that do not follow you back",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadDotEnv(v.GetString("env-file")); err != nil {
				return err
			}
			return setupLogging(stderr, v.GetString("log-level"))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := unfollow.Config{
				OutputDir: v.GetString("output-dir"),
				BatchSize: v.GetInt("batch-size"),
				Timeout:   v.GetDuration("timeout"),
			}
			if err := cfg.Normalize(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout)
		},
	}

	flags := cmd.Flags()
	flags.String("output-dir", ".", "directory for the snapshot files")
	flags.Duration("timeout", 30*time.Second, "per-request HTTP timeout")
	flags.Int("batch-size", unfollow.DefaultBatchSize, "ids per users/lookup call (1-100)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("env-file", "", "load credentials from this .env file instead of .env.local/.env")

	v.SetEnvPrefix("UNFOLLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	return cmd
}

func run(ctx context.Context, cfg unfollow.Config, stdout io.Writer) error {
	creds := unfollow.LoadCredentials(os.Getenv)
	slog.Debug("credentials loaded", slog.Any("credentials", creds))

	runner := &unfollow.Runner{
		Connect: twitterapi.Connector(twitterapi.Config{
			Timeout: cfg.Timeout,
			MetricsHook: func(endpoint string, success, rateLimited bool) {
				slog.Debug("api call",
					slog.String("endpoint", endpoint),
					slog.Bool("success", success),
					slog.Bool("rate_limited", rateLimited))
			},
		}),
		Writer:    unfollow.NewSnapshotWriter(cfg.OutputDir),
		Reporter:  unfollow.NewReporter(stdout),
		BatchSize: cfg.BatchSize,
	}

	res, err := runner.Run(ctx, creds)
	if err != nil {
		return err
	}
	if res.Partial != nil {
		slog.Warn("finished with a partial non-follower list", slog.Any("error", res.Partial))
	}
	return nil
}

// setupLogging installs the default slog logger with a per-run id.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler).With(slog.String("run_id", uuid.NewString())))
	return nil
}
