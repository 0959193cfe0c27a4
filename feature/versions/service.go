package versions

import (
	"context"
	"fmt"

	"version-counter/core/metrics"
	"version-counter/core/storage"

	"go.uber.org/zap"
)

// CountError is returned when counting fails in the store.
type CountError struct {
	Name string
	Err  error
}

func (e *CountError) Error() string {
	return fmt.Sprintf("counting versions of %q: %v", e.Name, e.Err)
}

func (e *CountError) Unwrap() error {
	return e.Err
}

// Service counts the stored versions of resources.
type Service struct {
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a new version count service. m may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		logger:  logger,
		metrics: m,
	}
}

// Prefix returns the key prefix holding the versions of name.
func Prefix(name string) string {
	return name + "/"
}

// CountVersions returns the number of objects stored under the name/ prefix,
// following continuation tokens until the listing is exhausted.
//
// name must already have passed ValidateName. Store failures are returned as
// *CountError wrapping a *storage.StoreError and are not retried.
func (s *Service) CountVersions(ctx context.Context, name string) (uint64, error) {
	prefix := Prefix(name)

	var (
		total uint64
		pages int
		token string
	)
	defer func() { s.metrics.ObservePages(pages) }()

	for {
		page, err := s.client.ListObjectsV2(ctx, s.bucket, prefix, token)
		if err != nil {
			return 0, &CountError{
				Name: name,
				Err:  &storage.StoreError{Op: "list", Bucket: s.bucket, Prefix: prefix, Err: err},
			}
		}
		pages++
		total += uint64(len(page.Keys))

		// A truncated page without a token cannot be continued.
		if !page.IsTruncated || page.NextContinuationToken == "" {
			break
		}
		token = page.NextContinuationToken
	}

	s.logger.Debug("Counted resource versions",
		zap.String("prefix", prefix),
		zap.Uint64("count", total),
		zap.Int("pages", pages))
	return total, nil
}
