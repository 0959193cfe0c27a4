package versions

import (
	"context"
	"fmt"
	"testing"

	"version-counter/core/storage"
	"version-counter/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func keys(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%sv%d", prefix, i)
	}
	return out
}

func TestService_CountVersions(t *testing.T) {
	ctx := context.Background()

	t.Run("ZeroMatches", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "ab/", "").
			Return(storage.ListPage{}, nil).Once()

		count, err := svc.CountVersions(ctx, "ab")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), count)
		mockClient.AssertExpectations(t)
	})

	t.Run("SinglePage", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "ab12/", "").
			Return(storage.ListPage{Keys: keys("ab12/", 3)}, nil).Once()

		count, err := svc.CountVersions(ctx, "ab12")
		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
		mockClient.AssertExpectations(t)
	})

	t.Run("TwoPages", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "logo/", "").
			Return(storage.ListPage{
				Keys:                  keys("logo/", 1000),
				IsTruncated:           true,
				NextContinuationToken: "page-2",
			}, nil).Once()
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "logo/", "page-2").
			Return(storage.ListPage{Keys: keys("logo/z", 1)}, nil).Once()

		count, err := svc.CountVersions(ctx, "logo")
		require.NoError(t, err)
		assert.Equal(t, uint64(1001), count)
		mockClient.AssertExpectations(t)
	})

	t.Run("TruncatedWithoutToken", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "ab/", "").
			Return(storage.ListPage{Keys: keys("ab/", 2), IsTruncated: true}, nil).Once()

		count, err := svc.CountVersions(ctx, "ab")
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)
		mockClient.AssertNumberOfCalls(t, "ListObjectsV2", 1)
	})

	t.Run("StoreError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "ab/", "").
			Return(storage.ListPage{}, assert.AnError).Once()

		count, err := svc.CountVersions(ctx, "ab")
		require.Error(t, err)
		assert.Equal(t, uint64(0), count)

		var countErr *CountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, "ab", countErr.Name)
		assert.ErrorIs(t, err, storage.ErrStore)
		assert.ErrorIs(t, err, assert.AnError)
		// Not retried
		mockClient.AssertNumberOfCalls(t, "ListObjectsV2", 1)
	})

	t.Run("StoreErrorOnSecondPage", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "ab/", "").
			Return(storage.ListPage{Keys: keys("ab/", 1000), IsTruncated: true, NextContinuationToken: "t"}, nil).Once()
		mockClient.On("ListObjectsV2", mock.Anything, "test-bucket", "ab/", "t").
			Return(storage.ListPage{}, assert.AnError).Once()

		_, err := svc.CountVersions(ctx, "ab")
		assert.ErrorIs(t, err, storage.ErrStore)
	})
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "ab12/", Prefix("ab12"))
}
