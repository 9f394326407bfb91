package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monoref/monoref/internal/monorepo"
	"github.com/monoref/monoref/internal/query"
)

var queryFormat string

func init() {
	queryInternalDependenciesCmd.Flags().StringVar(&queryFormat, "format", "name", "Identify packages by name or path")
	queryCmd.AddCommand(queryInternalDependenciesCmd)
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the monorepo package graph",
}

var queryInternalDependenciesCmd = &cobra.Command{
	Use:   "internal-dependencies",
	Short: "Print each package's internal dependencies as JSON",
	Long: `Print a JSON object mapping every internal package to the internal packages
it depends on. With --format name packages are keyed by package name, with
--format path by directory relative to the monorepo root.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := query.ParseFormat(queryFormat)
		if err != nil {
			return err
		}

		repo, err := monorepo.FromDirectory(monorepoRoot, logger)
		if err != nil {
			return err
		}
		result, err := query.InternalDependencies(repo, format)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling query result: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}
