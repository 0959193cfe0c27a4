package mocks

import (
	"context"

	"version-counter/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) ListObjectsV2(ctx context.Context, bucketName, prefix, continuationToken string) (storage.ListPage, error) {
	args := m.Called(ctx, bucketName, prefix, continuationToken)
	if page, ok := args.Get(0).(storage.ListPage); ok {
		return page, args.Error(1)
	}
	return storage.ListPage{}, args.Error(1)
}
