package modules

import (
	"context"
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage"

	"go.uber.org/zap"
)

// TargetAttribute is the attribute holding the module names of a target dataset.
const TargetAttribute = "Modulename"

// FileExtension is the extension of converted module files.
const FileExtension = ".xlsx"

var fileNamePattern = regexp.MustCompile(`^(.+?)_[0-9a-fA-F]{8}_local_conversion\.xlsx$`)

// ExtractModuleName returns the module part of a converted file name. Directories are ignored.
func ExtractModuleName(fileName string) (string, bool) {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	m := fileNamePattern.FindStringSubmatch(base)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Match is a resolved module.
type Match struct {
	File   string `json:"file"`
	Module string `json:"module"`
	Target string `json:"target"`
}

// Unresolved is a module without a target entry.
type Unresolved struct {
	File    string   `json:"file"`
	Module  string   `json:"module"`
	Similar []string `json:"similar"`
}

// Report is the outcome of resolving a set of files.
type Report struct {
	Matches    []Match      `json:"matches"`
	Unresolved []Unresolved `json:"unresolved"`
	// Skipped lists files whose name does not follow the conversion pattern.
	Skipped []string `json:"skipped"`
}

// Resolver looks up module names in a target list.
type Resolver struct {
	index  *match.FuzzyIndex
	limit  int
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSuggestionLimit caps the similar entries listed per unresolved module. 0 lists all.
func WithSuggestionLimit(n int) Option {
	return func(r *Resolver) {
		r.limit = n
	}
}

// NewResolver indexes the target module names. An empty prefix pattern in opts strips the
// default ordering prefix ("AS_044_").
func NewResolver(targets []string, opts match.FuzzyOptions, options ...Option) (*Resolver, error) {
	if opts.PrefixPattern == "" {
		opts.PrefixPattern = match.DefaultPrefixPattern
	}
	index, err := match.NewFuzzyIndex(targets, opts)
	if err != nil {
		return nil, err
	}
	r := &Resolver{index: index, logger: zap.NewNop()}
	for _, opt := range options {
		opt(r)
	}
	return r, nil
}

// Resolve maps every file to its target module, in file name order.
func (r *Resolver) Resolve(files []string) Report {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	rep := Report{Matches: []Match{}, Unresolved: []Unresolved{}, Skipped: []string{}}
	for _, file := range sorted {
		if !strings.EqualFold(path.Ext(file), FileExtension) {
			continue
		}
		module, ok := ExtractModuleName(file)
		if !ok {
			r.logger.Warn("Skipping file with unexpected name", zap.String("file", file))
			rep.Skipped = append(rep.Skipped, file)
			continue
		}
		if target, ok := r.index.Lookup(module); ok {
			rep.Matches = append(rep.Matches, Match{File: file, Module: module, Target: target})
			continue
		}
		similar := r.index.Suggest(module, r.limit)
		if similar == nil {
			similar = []string{}
		}
		r.logger.Debug("Module not found", zap.String("module", module), zap.Int("similar", len(similar)))
		rep.Unresolved = append(rep.Unresolved, Unresolved{File: file, Module: module, Similar: similar})
	}

	r.logger.Info("Modules resolved",
		zap.Int("matched", len(rep.Matches)),
		zap.Int("unresolved", len(rep.Unresolved)),
		zap.Int("skipped", len(rep.Skipped)))
	return rep
}

// Targets returns the non-blank values of attr in a dataset, in record order.
func Targets(d *record.Dataset, attr string) ([]string, error) {
	if attr == "" {
		attr = TargetAttribute
	}
	if !d.Schema.Has(attr) {
		return nil, fmt.Errorf("attribute %q not found in %s (available: %s)", attr, d.Name, strings.Join(d.Schema, ", "))
	}
	var out []string
	for _, rec := range d.Records {
		if v := rec.Get(attr); v.IsSet() {
			out = append(out, v.Trimmed())
		}
	}
	return out, nil
}

// ListDir returns the converted module files in a local directory.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source folder %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), FileExtension) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// ListObjects returns the converted module files stored under prefix in the bucket.
func ListObjects(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	return storage.ListNames(ctx, client, bucket, prefix, FileExtension)
}
