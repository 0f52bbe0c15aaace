package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codingconcepts/dlstats/commands"
	"github.com/codingconcepts/dlstats/config"
	"github.com/codingconcepts/dlstats/logging"
	"github.com/codingconcepts/dlstats/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitOk = iota
	exitError
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, commands.Diagnostic(err))
		os.Exit(exitError)
	}

	os.Exit(exitOk)
}

func run(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.NewLogger(os.Stderr, logging.Level(cfg.Log.Level), logging.Format(cfg.Log.Format))
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger = logger.With(
		zap.String("version", version.Version),
		zap.String("revision", version.Commit),
	)
	logger.Debug("loaded config", zap.Object("config", cfg))

	if cfg.InsecureSkipVerify {
		logger.Info("TLS certificate verification is disabled (INSECURE_SKIP_VERIFY=true)")
	}

	c := commands.NewClient(cfg.HTTP.Timeout, cfg.InsecureSkipVerify)

	rootCmd := &cobra.Command{
		Use:           "dlstats",
		Short:         fmt.Sprintf("Prints download statistics for %s/%s releases", commands.Owner, commands.Repo),
		Example:       "dlstats --order semver",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          commands.Stats(c, logger, commands.GitHubAPI),
	}
	rootCmd.Flags().String("order", commands.OrderVersion, "release ordering: version (lexicographic) or semver")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.Commit)
			return nil
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
