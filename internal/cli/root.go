package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/monoref/monoref/internal/branding"
	"github.com/monoref/monoref/internal/config"
	"github.com/monoref/monoref/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir string
	verbose bool

	// Set by the persistent pre-run for every command except version.
	monorepoRoot string
	settings     *config.Config
	logger       = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps the project references of a TypeScript monorepo in sync with
its package graph: every package references its internal dependencies, and
every directory above a package references the directories below it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		root, err := resolveRoot()
		if err != nil {
			return err
		}
		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		level := cfg.LogLevel()
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level)
		if err != nil {
			return err
		}

		monorepoRoot, settings, logger = root, cfg, l
		logger.Debug("resolved monorepo root", zap.String("root", root), zap.String("config", cfg.Path()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Syncing stderr fails on some platforms; nothing to recover.
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Monorepo root directory (default: $"+branding.EnvVar("ROOT")+" or the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// resolveRoot picks the monorepo root from --root, then the environment,
// then the working directory.
func resolveRoot() (string, error) {
	dir := rootDir
	if dir == "" {
		dir = os.Getenv(branding.EnvVar("ROOT"))
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("monorepo root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("monorepo root %s is not a directory", abs)
	}
	return abs, nil
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the running command between files.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
