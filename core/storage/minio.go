package storage

import (
	"context"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioClient struct {
	core *minio.Core
}

func newMinioClient(cfg Config, endpoint *url.URL) (Client, error) {
	// Minio expects endpoint without scheme
	core, err := minio.NewCore(endpoint.Host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.Credentials.AccessKey, cfg.Credentials.SecretKey, ""),
		Secure:       endpoint.Scheme == "https",
		Region:       cfg.Region.Region,
		Transport:    newTransport(),
		BucketLookup: minio.BucketLookupAuto,
	})
	if err != nil {
		return nil, connectionError(err)
	}
	// Minio connects lazily; the first listing surfaces unreachable endpoints.
	return &minioClient{core: core}, nil
}

func (c *minioClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return c.core.BucketExists(ctx, bucketName)
}

func (c *minioClient) ListObjectsV2(ctx context.Context, bucketName, prefix, continuationToken string) (ListPage, error) {
	if err := ctx.Err(); err != nil {
		return ListPage{}, err
	}

	// The page API of minio.Core has no context parameter.
	res, err := c.core.ListObjectsV2(bucketName, prefix, "", continuationToken, "", 0)
	if err != nil {
		return ListPage{}, err
	}

	keys := make([]string, 0, len(res.Contents))
	for _, obj := range res.Contents {
		keys = append(keys, obj.Key)
	}
	return ListPage{
		Keys:                  keys,
		IsTruncated:           res.IsTruncated,
		NextContinuationToken: res.NextContinuationToken,
	}, nil
}
