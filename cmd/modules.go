package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/modules"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	modulesFiles         string
	modulesTargets       string
	modulesAttribute     string
	modulesCaseSensitive bool
	modulesLimit         int
	modulesJSON          bool
)

// modulesCmd maps local conversion workbooks to the module names of a target list.
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Resolve local conversion workbooks to module names",
	Long: `Extracts the module name of every "<module>_<hash8>_local_conversion.xlsx" file and
resolves it against the module names of a target dataset. Unresolved modules are listed
with their closest target names.

Examples:
  reqcheck modules --files ./conversions --targets modules.yaml
  reqcheck modules --files object:conversions/ --targets table:modules --json`,
	RunE: runModules,
}

func init() {
	modulesCmd.Flags().StringVar(&modulesFiles, "files", ".", "Directory or object: prefix holding the workbooks")
	modulesCmd.Flags().StringVar(&modulesTargets, "targets", "", "Location of the dataset listing the target modules")
	modulesCmd.Flags().StringVar(&modulesAttribute, "attribute", "Modulename", "Attribute holding the module names")
	modulesCmd.Flags().BoolVar(&modulesCaseSensitive, "case-sensitive", false, "Compare module names case sensitively")
	modulesCmd.Flags().IntVar(&modulesLimit, "limit", 3, "Suggestions listed per unresolved module")
	modulesCmd.Flags().BoolVar(&modulesJSON, "json", false, "Print the result as JSON")
	_ = modulesCmd.MarkFlagRequired("targets")

	RootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := setup(needsDB(modulesTargets))
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	d, err := env.locator.Load(ctx, modulesTargets, record.SideReference)
	if err != nil {
		return fmt.Errorf("failed to load targets: %w", err)
	}
	if d == nil {
		return fmt.Errorf("no targets given")
	}
	targets, err := modules.Targets(d, modulesAttribute)
	if err != nil {
		return err
	}

	var files []string
	if prefix, ok := strings.CutPrefix(modulesFiles, source.SchemeObject); ok {
		if env.locator.Storage == nil {
			return fmt.Errorf("cannot list %s: no storage client", modulesFiles)
		}
		files, err = modules.ListObjects(ctx, env.locator.Storage, env.locator.Bucket, prefix)
	} else {
		files, err = modules.ListDir(modulesFiles)
	}
	if err != nil {
		return fmt.Errorf("failed to list workbooks: %w", err)
	}

	resolver, err := modules.NewResolver(targets,
		match.FuzzyOptions{PrefixPattern: env.cfg.Check.PrefixPattern, CaseSensitive: modulesCaseSensitive},
		modules.WithLogger(env.logger),
		modules.WithSuggestionLimit(modulesLimit))
	if err != nil {
		return err
	}
	rep := resolver.Resolve(files)

	if modulesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return printModules(rep)
}

func printModules(rep modules.Report) error {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("File", "Module", "Target", "Similar")
	for _, m := range rep.Matches {
		if err := table.Append(m.File, m.Module, m.Target, ""); err != nil {
			return err
		}
	}
	for _, u := range rep.Unresolved {
		if err := table.Append(u.File, u.Module, "-", strings.Join(u.Similar, ", ")); err != nil {
			return err
		}
	}
	for _, s := range rep.Skipped {
		if err := table.Append(s, "-", "-", "unexpected file name"); err != nil {
			return err
		}
	}
	return table.Render()
}
