package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-discussion/domain/mocks"
)

func pageOf(n, offset int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("b-%06d", offset+i)
	}
	return ids
}

func TestSyncBlogIDsPages(t *testing.T) {
	blogs := mocks.NewBlogRepository(t)
	bloom := mocks.NewBloomRepository(t)

	first := pageOf(blogIDPageSize, 0)
	second := pageOf(3, blogIDPageSize)
	blogs.On("FetchIDs", mock.Anything, "", int64(blogIDPageSize)).Return(first, nil).Once()
	blogs.On("FetchIDs", mock.Anything, first[len(first)-1], int64(blogIDPageSize)).Return(second, nil).Once()
	bloom.On("BulkAdd", mock.Anything, first).Return(nil).Once()
	bloom.On("BulkAdd", mock.Anything, second).Return(nil).Once()

	n, err := NewSyncBlogIDsWorker(blogs, bloom, 0).Sync(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, blogIDPageSize+3, n)
}

func TestSyncBlogIDsEmpty(t *testing.T) {
	blogs := mocks.NewBlogRepository(t)
	bloom := mocks.NewBloomRepository(t)
	blogs.On("FetchIDs", mock.Anything, "", int64(blogIDPageSize)).Return([]string{}, nil).Once()

	n, err := NewSyncBlogIDsWorker(blogs, bloom, 0).Sync(context.TODO())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSyncBlogIDsBloomError(t *testing.T) {
	blogs := mocks.NewBlogRepository(t)
	bloom := mocks.NewBloomRepository(t)
	blogs.On("FetchIDs", mock.Anything, "", int64(blogIDPageSize)).Return([]string{"b-1"}, nil).Once()
	bloom.On("BulkAdd", mock.Anything, []string{"b-1"}).Return(errors.New("redis down")).Once()

	_, err := NewSyncBlogIDsWorker(blogs, bloom, 0).Sync(context.TODO())
	assert.Error(t, err)
}
