package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ggpradas-dev/blog-project/internal/domain"
	"github.com/ggpradas-dev/blog-project/internal/infrastructure/storage"
	"github.com/ggpradas-dev/blog-project/internal/logger"
	"github.com/ggpradas-dev/blog-project/internal/metrics"
	"github.com/ggpradas-dev/blog-project/internal/repository"
	"github.com/ggpradas-dev/blog-project/internal/validator"
)

// ArticleService coordinates the article table and the image blob store.
//
// An article owns at most one blob. The two backends are not covered by a
// transaction; operations that touch both run sequentially and report a
// partial failure to the caller when the second write fails. The
// Reconciler's sweep is the recovery path for the states this can leave
// behind.
type ArticleService struct {
	repo      repository.ArticleRepository
	images    storage.ImageStorage
	validator *validator.Validator
	urlTTL    time.Duration

	// now is replaceable in tests to pin blob names and dates.
	now func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	repo repository.ArticleRepository,
	images storage.ImageStorage,
	v *validator.Validator,
	urlTTL time.Duration,
) *ArticleService {
	return &ArticleService{
		repo:      repo,
		images:    images,
		validator: v,
		urlTTL:    urlTTL,
		now:       time.Now,
	}
}

// CreateArticle validates the input and persists a new article. The image
// reference starts at the default sentinel; uploads happen through
// AttachImage afterwards so creation never blocks on the blob store.
func (s *ArticleService) CreateArticle(ctx context.Context, in CreateArticleInput) (*domain.Article, error) {
	article := &domain.Article{
		ID:      uuid.New().String(),
		Title:   strings.TrimSpace(in.Title),
		Content: in.Content,
		Writer:  strings.TrimSpace(in.Writer),
		Date:    s.now().UTC(),
		Image:   domain.DefaultImage,
	}

	if err := s.validator.ValidateArticle(article); err != nil {
		metrics.ObserveArticleOperation("create", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArticle, err)
	}

	if err := s.repo.Create(ctx, article); err != nil {
		metrics.ObserveArticleOperation("create", err)
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.ObserveArticleOperation("create", nil)
	logger.WithArticleID(article.ID).Info("article created",
		slog.String("writer", article.Writer))
	return article, nil
}

// ListArticles returns articles newest first.
func (s *ArticleService) ListArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	articles, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, domain.ErrNoResults
	}
	return articles, nil
}

// GetArticle returns one article by id.
func (s *ArticleService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

// UpdateArticle merges the supplied fields onto the stored record and
// persists the result. Fields left nil keep their stored values; the image
// reference never changes here.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, in UpdateArticleInput) (*domain.Article, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	merged := *existing
	if in.Title != nil {
		merged.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		merged.Content = *in.Content
	}
	if in.Writer != nil {
		merged.Writer = strings.TrimSpace(*in.Writer)
	}

	if err := s.validator.ValidateArticle(&merged); err != nil {
		metrics.ObserveArticleOperation("update", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArticle, err)
	}

	updated, err := s.repo.Update(ctx, &merged)
	if err != nil {
		metrics.ObserveArticleOperation("update", err)
		return nil, fmt.Errorf("update article: %w", err)
	}
	if updated == nil {
		// Deleted between the read and the write.
		return nil, domain.ErrNotFound
	}

	metrics.ObserveArticleOperation("update", nil)
	return updated, nil
}

// DeleteArticle removes the record, then its blob when the article carries
// a custom image. The database delete comes first: when the blob delete
// fails afterwards the record stays gone and the caller gets
// domain.ErrImageDelete; the orphaned blob is left for the reconciler.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return domain.ErrNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		metrics.ObserveArticleOperation("delete", err)
		return fmt.Errorf("delete article: %w", err)
	}
	if deleted == nil {
		return domain.ErrNotFound
	}

	if deleted.HasCustomImage() {
		start := s.now()
		err := s.images.Delete(ctx, deleted.Image)
		metrics.ObserveStorageOperation("delete", start, err)
		if err != nil {
			metrics.ObserveArticleOperation("delete", err)
			logger.WithArticleID(id).Error("article deleted but image removal failed",
				slog.String("image", deleted.Image),
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: %v", domain.ErrImageDelete, err)
		}
	}

	metrics.ObserveArticleOperation("delete", nil)
	logger.WithArticleID(id).Info("article deleted")
	return nil
}

// AttachImage replaces the article's image blob and returns the updated
// record plus a signed read URL.
//
// The previous blob is removed before the new one is uploaded; when that
// removal fails the operation aborts with the article untouched, so a
// failed replacement never leaves two blobs behind.
func (s *ArticleService) AttachImage(ctx context.Context, id string, data []byte, filename, contentType string) (*domain.Article, string, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, "", domain.ErrNotFound
	}

	if article.HasCustomImage() {
		start := s.now()
		err := s.images.Delete(ctx, article.Image)
		metrics.ObserveStorageOperation("delete", start, err)
		if err != nil {
			metrics.ObserveArticleOperation("attach_image", err)
			return nil, "", fmt.Errorf("%w: %v", domain.ErrImageDelete, err)
		}
	}

	name := s.blobName(filename)

	start := s.now()
	err = s.images.Upload(ctx, name, data, contentType)
	metrics.ObserveStorageOperation("upload", start, err)
	if err != nil {
		metrics.ObserveArticleOperation("attach_image", err)
		return nil, "", fmt.Errorf("%w: %v", domain.ErrImageUpload, err)
	}

	updated, err := s.repo.UpdateImage(ctx, id, name)
	if err != nil {
		metrics.ObserveArticleOperation("attach_image", err)
		// The blob is uploaded but unreferenced; the reconciler sweeps
		// it up.
		return nil, "", fmt.Errorf("update article image: %w", err)
	}
	if updated == nil {
		return nil, "", domain.ErrNotFound
	}

	url, err := s.images.SignedURL(ctx, name, s.urlTTL)
	if err != nil {
		metrics.ObserveArticleOperation("attach_image", err)
		return nil, "", fmt.Errorf("sign image url: %w", err)
	}

	metrics.ObserveArticleOperation("attach_image", nil)
	logger.WithArticleID(id).Info("article image replaced",
		slog.String("image", name))
	return updated, url, nil
}

// ImageURL returns a signed read URL for a stored blob.
func (s *ArticleService) ImageURL(ctx context.Context, name string) (string, error) {
	exists, err := s.images.Exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("check image: %w", err)
	}
	if !exists {
		return "", domain.ErrImageNotFound
	}

	url, err := s.images.SignedURL(ctx, name, s.urlTTL)
	if err != nil {
		return "", fmt.Errorf("sign image url: %w", err)
	}
	return url, nil
}

// SearchArticles returns articles matching term, newest first.
func (s *ArticleService) SearchArticles(ctx context.Context, term string) ([]domain.Article, error) {
	articles, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, domain.ErrNoResults
	}
	return articles, nil
}

// blobName builds a unique blob name from the upload time and the original
// filename. The timestamp avoids collisions without coordination; the
// filename is reduced to its base so path segments in uploads cannot
// escape the storage prefix.
func (s *ArticleService) blobName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("article_%d_%s", s.now().UnixMilli(), base)
}
