// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so checks can read dataset documents from a bucket and
// publish their reports back to it. This abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: creates the bucket on first use.
//   - ListNames: lists object names under a prefix, filtered by extension.
//   - Get / Put: whole-object download and upload.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	names, err := storage.ListNames(ctx, client, cfg.Storage.Bucket, "datasets/", ".yaml")
package storage
