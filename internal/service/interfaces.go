package service

import (
	"context"

	"github.com/ggpradas-dev/blog-project/internal/domain"
)

// CreateArticleInput carries the user-supplied fields for a new article.
type CreateArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Writer  string `json:"writer"`
}

// UpdateArticleInput carries a partial update. Nil fields keep their stored
// values.
type UpdateArticleInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Writer  *string `json:"writer"`
}

// ArticleServiceInterface defines the article service contract for handlers.
type ArticleServiceInterface interface {
	// CreateArticle validates the input and persists a new article with
	// the default image. Image upload is a separate, subsequent call.
	CreateArticle(ctx context.Context, in CreateArticleInput) (*domain.Article, error)

	// ListArticles returns articles newest first. A non-positive limit
	// returns all articles. Zero records is domain.ErrNoResults.
	ListArticles(ctx context.Context, limit int) ([]domain.Article, error)

	// GetArticle returns one article or domain.ErrNotFound.
	GetArticle(ctx context.Context, id string) (*domain.Article, error)

	// UpdateArticle merges the supplied fields onto the stored record,
	// validates the result with the create rules, and persists it.
	UpdateArticle(ctx context.Context, id string, in UpdateArticleInput) (*domain.Article, error)

	// DeleteArticle removes the record and, when the article carries a
	// custom image, its blob. The record is deleted first; a blob
	// deletion failure is reported as domain.ErrImageDelete even though
	// the record is already gone.
	DeleteArticle(ctx context.Context, id string) error

	// AttachImage replaces the article's image: the previous blob is
	// deleted before the new one is uploaded, then the record is updated
	// and a long-lived signed read URL is returned alongside it.
	AttachImage(ctx context.Context, id string, data []byte, filename, contentType string) (*domain.Article, string, error)

	// ImageURL returns a signed read URL for a stored blob, or
	// domain.ErrImageNotFound.
	ImageURL(ctx context.Context, name string) (string, error)

	// SearchArticles returns articles whose title or content contains
	// term, newest first. Zero matches is domain.ErrNoResults.
	SearchArticles(ctx context.Context, term string) ([]domain.Article, error)
}
