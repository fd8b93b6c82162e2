package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var datasetsSide string

// datasetsCmd lists the dataset documents stored in the bucket.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List dataset documents in the storage bucket",
	Long:  `Lists the YAML/JSON dataset documents below STORAGE_DATASET_PREFIX; use them as "object:<name>" locations.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(false)
		if err != nil {
			return err
		}
		defer env.logger.Sync()
		if env.locator.Storage == nil {
			return fmt.Errorf("no storage client")
		}

		names, err := source.ListObjects(cmd.Context(), env.locator.Storage, env.locator.Bucket, env.cfg.Storage.DatasetPrefix)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(source.SchemeObject + name)
		}
		return nil
	},
}

// datasetsPushCmd stores datasets from any location as YAML documents in the bucket.
var datasetsPushCmd = &cobra.Command{
	Use:   "push <location>...",
	Short: "Upload datasets as documents to the storage bucket",
	Long: `Loads each location (file or "table:<name>"), validates it and uploads it as a YAML
dataset document below STORAGE_DATASET_PREFIX. The bucket is created when missing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		side, err := parseSide(datasetsSide)
		if err != nil {
			return err
		}

		env, err := setup(needsDB(args...))
		if err != nil {
			return err
		}
		defer env.logger.Sync()
		if env.locator.Storage == nil {
			return fmt.Errorf("no storage client")
		}
		if err := storage.EnsureBucket(ctx, env.locator.Storage, env.locator.Bucket, env.cfg.Storage.Region); err != nil {
			return err
		}

		for _, location := range args {
			d, err := env.locator.Load(ctx, location, side)
			if err != nil {
				return err
			}
			data, err := source.Encode(d)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", location, err)
			}
			name := env.cfg.Storage.DatasetPrefix + documentName(d.Name)
			if err := storage.Put(ctx, env.locator.Storage, env.locator.Bucket, name, "application/yaml", data); err != nil {
				return err
			}
			env.logger.Info("Dataset uploaded",
				zap.String("location", location),
				zap.String("object", name),
				zap.Int("records", d.Len()))
		}
		return nil
	},
}

func init() {
	datasetsPushCmd.Flags().StringVar(&datasetsSide, "side", "source", "Side recorded in the documents (source, reference)")
	datasetsCmd.AddCommand(datasetsPushCmd)
	RootCmd.AddCommand(datasetsCmd)
}

func parseSide(s string) (record.Side, error) {
	switch side := record.Side(strings.ToLower(strings.TrimSpace(s))); side {
	case record.SideSource, record.SideReference:
		return side, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// documentName turns a dataset name into the file name of its YAML document.
func documentName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "dataset"
	}
	return base + ".yaml"
}
