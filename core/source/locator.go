package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// SchemeTable selects a database table: "table:ppe_import".
	SchemeTable = "table:"
	// SchemeObject selects a document in the bucket: "object:datasets/ppe.yaml".
	SchemeObject = "object:"
)

// Locator loads datasets from whichever backend a location string names.
// Locations without a scheme are file paths.
type Locator struct {
	// DB is used for table locations; nil disables them.
	DB *gorm.DB
	// Storage and Bucket are used for object locations; a nil client disables them.
	Storage storage.Client
	Bucket  string
	// IDAttribute is the identifier attribute of table datasets.
	IDAttribute string
	Logger      *zap.Logger
}

// Load reads the dataset at location for the given side. An empty location yields nil
// without error, for runs without a reference dataset.
func (l *Locator) Load(ctx context.Context, location string, side record.Side) (*record.Dataset, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil
	}
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		d   *record.Dataset
		err error
	)
	switch {
	case strings.HasPrefix(location, SchemeTable):
		if l.DB == nil {
			return nil, fmt.Errorf("cannot load %s: no database connection", location)
		}
		d, err = LoadTable(ctx, l.DB, strings.TrimPrefix(location, SchemeTable), side, l.IDAttribute)
	case strings.HasPrefix(location, SchemeObject):
		if l.Storage == nil {
			return nil, fmt.Errorf("cannot load %s: no storage client", location)
		}
		d, err = LoadObject(ctx, l.Storage, l.Bucket, strings.TrimPrefix(location, SchemeObject), side)
	default:
		d, err = LoadFile(location, side)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("Dataset loaded",
		zap.String("location", location),
		zap.String("side", string(side)),
		zap.Int("records", d.Len()),
		zap.Int("attributes", len(d.Schema)))
	return d, nil
}
