// Package storage provides the object store adapter used to count resource versions.
//
// It builds a single, concurrency-safe client from the bucket connection settings
// (bucket name, custom region/endpoint and static credentials). Two drivers are
// available: the MinIO Go client (default) and the AWS SDK v2 S3 client.
//
// # Client Interface
//
// The Client interface exposes page level listing so callers can aggregate
// across continuation tokens, and a bucket existence probe. A testify mock lives
// in core/storage/mocks.
//
// # Errors
//
//   - ErrInvalidCredentials: key material cannot build a signing context.
//   - ErrConnection: the region or endpoint cannot be used.
//   - ErrStore: a storage call failed at runtime (see StoreError).
//
// # Credentials
//
// Credentials redact themselves in every textual form (fmt, JSON, zap).
//
// # Usage
//
//	client, err := storage.NewClient(ctx, cfg)
//	page, err := client.ListObjectsV2(ctx, cfg.Name, "logo/", "")
package storage
