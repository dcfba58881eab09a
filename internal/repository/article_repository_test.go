package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggpradas-dev/blog-project/internal/domain"
	"github.com/ggpradas-dev/blog-project/internal/repository"
)

const testContent = `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"body"}]}]}`

func newTestArticle(title string, date time.Time) *domain.Article {
	return &domain.Article{
		ID:      uuid.New().String(),
		Title:   title,
		Content: testContent,
		Writer:  "Test Writer",
		Date:    date,
		Image:   domain.DefaultImage,
	}
}

func TestPostgresArticleRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		article := newTestArticle("First article", time.Now().UTC())
		require.NoError(t, repo.Create(ctx, article))

		got, err := repo.GetByID(ctx, article.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, article.ID, got.ID)
		assert.Equal(t, "First article", got.Title)
		assert.Equal(t, testContent, got.Content)
		assert.Equal(t, domain.DefaultImage, got.Image)
		assert.WithinDuration(t, article.Date, got.Date, time.Second)
	})

	t.Run("get missing article returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		got, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update overwrites mutable fields only", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		article := newTestArticle("Original title", time.Now().UTC())
		require.NoError(t, repo.Create(ctx, article))

		article.Title = "Changed title"
		article.Writer = "Other Writer"
		updated, err := repo.Update(ctx, article)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Changed title", updated.Title)
		assert.Equal(t, "Other Writer", updated.Writer)
		assert.Equal(t, domain.DefaultImage, updated.Image)
	})

	t.Run("update missing article returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		article := newTestArticle("Ghost", time.Now().UTC())
		updated, err := repo.Update(ctx, article)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("update image only touches the image field", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		article := newTestArticle("With image", time.Now().UTC())
		require.NoError(t, repo.Create(ctx, article))

		updated, err := repo.UpdateImage(ctx, article.ID, "article_1_cover.png")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "article_1_cover.png", updated.Image)
		assert.Equal(t, "With image", updated.Title)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		article := newTestArticle("Doomed", time.Now().UTC())
		article.Image = "article_1_doomed.png"
		require.NoError(t, repo.Create(ctx, article))

		deleted, err := repo.Delete(ctx, article.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, "article_1_doomed.png", deleted.Image)

		got, err := repo.GetByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete missing article returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		deleted, err := repo.Delete(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, deleted)
	})
}

func TestPostgresArticleRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T, n int) []string {
		t.Helper()
		base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		titles := make([]string, 0, n)
		for i := 0; i < n; i++ {
			title := "Article number " + string(rune('A'+i))
			article := newTestArticle(title, base.Add(time.Duration(i)*time.Hour))
			require.NoError(t, repo.Create(ctx, article))
			titles = append(titles, title)
		}
		return titles
	}

	t.Run("returns all articles newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")
		titles := seed(t, 3)

		articles, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, titles[2], articles[0].Title)
		assert.Equal(t, titles[1], articles[1].Title)
		assert.Equal(t, titles[0], articles[2].Title)
	})

	t.Run("limit caps the result set", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")
		titles := seed(t, 5)

		articles, err := repo.List(ctx, 3)
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, titles[4], articles[0].Title)
		assert.Equal(t, titles[3], articles[1].Title)
		assert.Equal(t, titles[2], articles[2].Title)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		articles, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestPostgresArticleRepository_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("matches title and content case-insensitively", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

		inTitle := newTestArticle("Concurrency in Go", base.Add(2*time.Hour))
		require.NoError(t, repo.Create(ctx, inTitle))

		inContent := newTestArticle("Another subject", base.Add(time.Hour))
		inContent.Content = `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"all about CONCURRENCY"}]}]}`
		require.NoError(t, repo.Create(ctx, inContent))

		unrelated := newTestArticle("Cooking with cast iron", base)
		require.NoError(t, repo.Create(ctx, unrelated))

		articles, err := repo.Search(ctx, "concurrency")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		// Newest first.
		assert.Equal(t, inTitle.ID, articles[0].ID)
		assert.Equal(t, inContent.ID, articles[1].ID)
	})

	t.Run("treats LIKE metacharacters literally", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		article := newTestArticle("Discount is 100% off", time.Now().UTC())
		require.NoError(t, repo.Create(ctx, article))

		articles, err := repo.Search(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, articles, 1)

		articles, err = repo.Search(ctx, "1_0%")
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		articles, err := repo.Search(ctx, "nothing")
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestPostgresArticleRepository_ImageRefs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("excludes the default sentinel", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		withImage := newTestArticle("Has image", time.Now().UTC())
		withImage.Image = "article_1_cover.png"
		require.NoError(t, repo.Create(ctx, withImage))

		withDefault := newTestArticle("Default image", time.Now().UTC())
		require.NoError(t, repo.Create(ctx, withDefault))

		refs, err := repo.ImageRefs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"article_1_cover.png"}, refs)
	})
}
