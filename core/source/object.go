package source

import (
	"context"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage"
)

// LoadObject reads a dataset document from the object storage bucket.
func LoadObject(ctx context.Context, client storage.Client, bucket, name string, side record.Side) (*record.Dataset, error) {
	data, err := storage.Get(ctx, client, bucket, name)
	if err != nil {
		return nil, errors.NewDatasetError(bucket+"/"+name, "downloading object", err)
	}
	return Decode(data, name, side)
}

// ListObjects returns the dataset documents stored under prefix.
func ListObjects(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	return storage.ListNames(ctx, client, bucket, prefix, ".yaml", ".yml", ".json")
}
