package cmd

import (
	"fmt"
	"os"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var rulesDirection string

// rulesCmd lists the rule sets of the registered projects.
var rulesCmd = &cobra.Command{
	Use:   "rules [project...]",
	Short: "List the rules of each project",
	Long: `Lists rule ids and titles per project and direction. Without arguments every
registered project is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := checks.NewRegistry(checks.Params{})
		projects := args
		if len(projects) == 0 {
			projects = registry.Projects()
		}

		directions := []reconcile.Direction{reconcile.Import, reconcile.Export}
		if rulesDirection != "" {
			dir, err := reconcile.ParseDirection(rulesDirection)
			if err != nil {
				return err
			}
			directions = []reconcile.Direction{dir}
		}

		table := tablewriter.NewTable(os.Stdout)
		table.Header("Project", "Direction", "Rule", "Arity", "Title")
		for _, name := range projects {
			adapter, err := registry.Lookup(name)
			if err != nil {
				return err
			}
			for _, dir := range directions {
				for _, def := range adapter.Rules(dir) {
					if err := table.Append(adapter.Name(), string(dir), def.ID, string(def.Arity), def.Title); err != nil {
						return fmt.Errorf("failed to list rule %s: %w", def.ID, err)
					}
				}
			}
		}
		return table.Render()
	},
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesDirection, "direction", "d", "", "Only list import or export rules")
	RootCmd.AddCommand(rulesCmd)
}
