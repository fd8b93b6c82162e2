package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkProject   string
	checkDirection string
	checkSource    string
	checkReference string
	checkFormat    string
	checkOutput    string
	checkMarkup    string
	checkWorkers   int
	checkStrategy  string
	checkPublish   bool
)

// checkCmd runs the rules of a project on a source and an optional reference dataset.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a customer export against a supplier export",
	Long: `Runs the import or export rules of a project and prints the report.

Locations are file paths to dataset documents (YAML/JSON), "table:<name>" for a database
table or "object:<key>" for a document in the storage bucket.

Examples:
  # PPE import check, table on the console
  reqcheck check --project ppe --source customer.yaml --reference bosch.yaml --format text

  # SDV01 import check from the database, Markdown report plus TSV lists next to it
  reqcheck check --project sdv01 --source table:sdv01_customer --reference table:sdv01_bosch \
    --format markdown --output reports/sdv01.md

  # Publish the JSON and Markdown report to the bucket
  reqcheck check --project ssp --source object:datasets/ssp_customer.yaml \
    --reference object:datasets/ssp_bosch.yaml --publish`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkProject, "project", "p", "", "Project rule family (ppe, ssp, sdv01); defaults to CHECK_PROJECT")
	checkCmd.Flags().StringVarP(&checkDirection, "direction", "d", "", "import or export; defaults to CHECK_DIRECTION")
	checkCmd.Flags().StringVarP(&checkSource, "source", "s", "", "Location of the customer dataset")
	checkCmd.Flags().StringVarP(&checkReference, "reference", "r", "", "Location of the supplier dataset (optional)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Report format (text, json, markdown)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Write the report to this file instead of stdout")
	checkCmd.Flags().StringVar(&checkMarkup, "markup", "brackets", "Diff markup (brackets, html)")
	checkCmd.Flags().IntVar(&checkWorkers, "workers", -1, "Rules evaluated concurrently; defaults to CHECK_WORKERS")
	checkCmd.Flags().StringVar(&checkStrategy, "strategy", "", "Override the match strategy (exact, fuzzy)")
	checkCmd.Flags().BoolVar(&checkPublish, "publish", false, "Publish the report to the storage bucket")
	_ = checkCmd.MarkFlagRequired("source")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	format, err := report.ParseFormat(checkFormat)
	if err != nil {
		return err
	}

	env, err := setup(needsDB(checkSource, checkReference))
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	cfg := env.cfg.Check
	if checkWorkers >= 0 {
		cfg.Workers = checkWorkers
	}
	if checkStrategy != "" {
		cfg.Strategy = checkStrategy
	}
	svc := checks.NewService(checks.NewRegistry(checks.Params{}), env.locator, env.logger, cfg, env.cfg.Storage.ReportPrefix)

	src, err := svc.Load(ctx, checkSource, record.SideSource)
	if err != nil {
		return fmt.Errorf("failed to load source dataset: %w", err)
	}
	ref, err := svc.Load(ctx, checkReference, record.SideReference)
	if err != nil {
		return fmt.Errorf("failed to load reference dataset: %w", err)
	}

	req := checks.Request{Project: checkProject, Direction: checkDirection, Source: src, Reference: ref}
	res, err := svc.Check(ctx, req)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	warnSkipped(env.logger, res.Diagnostics)
	rep := svc.Report(req, res, checkMarkup)

	var buf bytes.Buffer
	if err := rep.Render(&buf, format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if checkOutput == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	} else {
		files, err := writeReportFiles(checkOutput, buf.Bytes(), rep)
		if err != nil {
			return err
		}
		env.logger.Info("Report saved", zap.Strings("files", files))
	}

	if checkPublish {
		if _, err := svc.Publish(ctx, rep, report.FormatJSON, report.FormatMarkdown); err != nil {
			return fmt.Errorf("failed to publish report: %w", err)
		}
	}

	env.logger.Info("Check completed",
		zap.String("run_id", res.RunID),
		zap.Int("findings", res.Summary.Findings),
		zap.Int("skipped_rules", res.Summary.Skipped),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}

// warnSkipped logs every rule that was not evaluated.
func warnSkipped(l *zap.Logger, diags []rules.Diagnostic) {
	for _, d := range diags {
		l.Warn("Rule skipped", zap.String("rule", d.RuleID), zap.String("kind", string(d.Kind)), zap.Error(d.Err()))
	}
}

// writeReportFiles saves the rendered report and the follow-up lists as TSV files next to it.
func writeReportFiles(output string, data []byte, rep *report.Report) ([]string, error) {
	if err := os.WriteFile(output, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	files := []string{output}

	stem := strings.TrimSuffix(output, filepath.Ext(output))
	for _, t := range []*report.Table{rep.Translations, rep.Updates} {
		if t.Len() == 0 {
			continue
		}
		tsv, err := t.TSV()
		if err != nil {
			return files, err
		}
		name := stem + "_" + t.Name + ".tsv"
		if err := os.WriteFile(name, tsv, 0644); err != nil {
			return files, fmt.Errorf("failed to save %s: %w", name, err)
		}
		files = append(files, name)
	}
	return files, nil
}
