package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/monoref/monoref/internal/linker"
)

var linkCheck bool

func init() {
	linkCmd.Flags().BoolVar(&linkCheck, "check", false, "Report out-of-date references without writing (default from link.check)")
	rootCmd.AddCommand(linkCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link TypeScript project references",
	Long: `Rewrite project references so that every internal package references the
internal packages it depends on, and every directory above a package
references its child directories. Missing directory configurations are
created as {"files": [], "references": [...]}.

With --check, nothing is written. Each out-of-date file is printed with the
references it should have, and the command exits with status 1.

Example:
  monoref link
  monoref link --check --root ./my-monorepo`,
	Args: cobra.NoArgs,
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	check := settings.Check()
	if cmd.Flags().Changed("check") {
		check = linkCheck
	}
	action := linker.ActionWrite
	if check {
		action = linker.ActionLint
	}

	summary, err := linker.LinkProjectReferences(cmd.Context(), monorepoRoot, settings.TsconfigFileName(), linker.Options{
		Action: action,
		Out:    cmd.OutOrStdout(),
		Logger: logger,
	})
	if summary != nil {
		logger.Info("linked project references",
			zap.Stringer("action", action),
			zap.Int("unchanged", len(summary.Unchanged)),
			zap.Int("updated", len(summary.Updated)),
			zap.Int("divergent", len(summary.Divergent)))
	}
	return err
}
