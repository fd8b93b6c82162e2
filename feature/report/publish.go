package report

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage"
)

// BaseName derives the object name stem of a report from its source dataset, e.g.
// "ppe_customer.xlsx" becomes "ppe_customer_<run id>".
func (r *Report) BaseName() string {
	base := path.Base(strings.ReplaceAll(r.SourceName, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "report"
	}
	if r.RunID == "" {
		return base
	}
	return base + "_" + r.RunID
}

// Publish uploads the report in every requested format, plus the follow-up lists as TSV files,
// below prefix in the bucket. It returns the object names written.
func Publish(ctx context.Context, client storage.Client, bucket, prefix string, r *Report, formats ...Format) ([]string, error) {
	if len(formats) == 0 {
		formats = []Format{FormatJSON}
	}
	base := prefix + r.BaseName()

	var names []string
	for _, f := range formats {
		var buf bytes.Buffer
		if err := r.Render(&buf, f); err != nil {
			return names, err
		}
		name := base + f.Extension()
		if err := storage.Put(ctx, client, bucket, name, f.ContentType(), buf.Bytes()); err != nil {
			return names, err
		}
		names = append(names, name)
	}

	for _, t := range []*Table{r.Translations, r.Updates} {
		if t.Len() == 0 {
			continue
		}
		data, err := t.TSV()
		if err != nil {
			return names, err
		}
		name := base + "_" + t.Name + ".tsv"
		if err := storage.Put(ctx, client, bucket, name, "text/tab-separated-values; charset=utf-8", data); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}
