package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ggpradas-dev/blog-project/internal/mocks"
	"github.com/ggpradas-dev/blog-project/internal/service"
)

func TestReconciler_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("reports orphaned blobs and dangling references", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		mockImages := mocks.NewMockImageStorage(t)

		mockRepo.EXPECT().ImageRefs(mock.Anything).
			Return([]string{"article_1_a.png", "article_2_b.png"}, nil)
		mockImages.EXPECT().List(mock.Anything).
			Return([]string{"article_1_a.png", "article_3_c.png"}, nil)

		r := service.NewReconciler(mockRepo, mockImages, false)

		result, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"article_3_c.png"}, result.OrphanedBlobs)
		assert.Equal(t, []string{"article_2_b.png"}, result.DanglingRefs)
		assert.Equal(t, 0, result.DeletedOrphans)
		mockImages.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes orphans when enabled", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		mockImages := mocks.NewMockImageStorage(t)

		mockRepo.EXPECT().ImageRefs(mock.Anything).Return([]string{"article_1_a.png"}, nil)
		mockImages.EXPECT().List(mock.Anything).
			Return([]string{"article_1_a.png", "article_3_c.png"}, nil)
		mockImages.EXPECT().Delete(mock.Anything, "article_3_c.png").Return(nil)

		r := service.NewReconciler(mockRepo, mockImages, true)

		result, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.DeletedOrphans)
	})

	t.Run("leaves freshly uploaded orphans alone", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		mockImages := mocks.NewMockImageStorage(t)

		// A blob uploaded moments ago may belong to an image replacement
		// whose article row update has not landed yet.
		fresh := fmt.Sprintf("article_%d_new.png", time.Now().UnixMilli())

		mockRepo.EXPECT().ImageRefs(mock.Anything).Return(nil, nil)
		mockImages.EXPECT().List(mock.Anything).
			Return([]string{fresh, "article_1_stale.png"}, nil)
		mockImages.EXPECT().Delete(mock.Anything, "article_1_stale.png").Return(nil)

		r := service.NewReconciler(mockRepo, mockImages, true)

		result, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Len(t, result.OrphanedBlobs, 2)
		assert.Equal(t, 1, result.DeletedOrphans)
		mockImages.AssertNotCalled(t, "Delete", mock.Anything, fresh)
	})

	t.Run("continues past individual delete failures", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		mockImages := mocks.NewMockImageStorage(t)

		mockRepo.EXPECT().ImageRefs(mock.Anything).Return(nil, nil)
		mockImages.EXPECT().List(mock.Anything).
			Return([]string{"article_1_a.png", "article_2_b.png"}, nil)
		mockImages.EXPECT().
			Delete(mock.Anything, "article_1_a.png").
			Return(errors.New("storage unavailable"))
		mockImages.EXPECT().Delete(mock.Anything, "article_2_b.png").Return(nil)

		r := service.NewReconciler(mockRepo, mockImages, true)

		result, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.DeletedOrphans)
		assert.Len(t, result.OrphanedBlobs, 2)
	})

	t.Run("reports nothing when stores agree", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		mockImages := mocks.NewMockImageStorage(t)

		mockRepo.EXPECT().ImageRefs(mock.Anything).Return([]string{"article_1_a.png"}, nil)
		mockImages.EXPECT().List(mock.Anything).Return([]string{"article_1_a.png"}, nil)

		r := service.NewReconciler(mockRepo, mockImages, true)

		result, err := r.Sweep(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.OrphanedBlobs)
		assert.Empty(t, result.DanglingRefs)
	})

	t.Run("propagates listing errors", func(t *testing.T) {
		mockRepo := mocks.NewMockArticleRepository(t)
		mockImages := mocks.NewMockImageStorage(t)

		mockRepo.EXPECT().ImageRefs(mock.Anything).Return(nil, errors.New("db down"))

		r := service.NewReconciler(mockRepo, mockImages, false)

		_, err := r.Sweep(ctx)
		require.Error(t, err)
	})
}

func TestReconciler_StartStop(t *testing.T) {
	mockRepo := mocks.NewMockArticleRepository(t)
	mockImages := mocks.NewMockImageStorage(t)

	mockRepo.EXPECT().ImageRefs(mock.Anything).Return(nil, nil).Maybe()
	mockImages.EXPECT().List(mock.Anything).Return(nil, nil).Maybe()

	r := service.NewReconciler(mockRepo, mockImages, false)
	r.Start(10 * time.Millisecond)

	time.Sleep(35 * time.Millisecond)
	r.Stop()
}
