package repository

import (
	"context"

	"github.com/ggpradas-dev/blog-project/internal/domain"
)

// ArticleRepository defines methods for article data access.
//
// Reads signal "not found" by returning (nil, nil); an error always means a
// storage failure, never a missing record. Delete, Update and UpdateImage
// follow the same convention so callers can tell the two conditions apart.
type ArticleRepository interface {
	// Create persists a new article. The caller assigns ID, Date and Image.
	Create(ctx context.Context, article *domain.Article) error

	// List returns articles sorted by date descending. A non-positive
	// limit returns all articles.
	List(ctx context.Context, limit int) ([]domain.Article, error)

	// GetByID returns the article with the given id, or (nil, nil).
	GetByID(ctx context.Context, id string) (*domain.Article, error)

	// Update overwrites the mutable fields (title, content, writer, image)
	// of an existing article and returns the stored row, or (nil, nil).
	Update(ctx context.Context, article *domain.Article) (*domain.Article, error)

	// UpdateImage sets only the image reference and returns the stored
	// row, or (nil, nil).
	UpdateImage(ctx context.Context, id, image string) (*domain.Article, error)

	// Delete removes the article and returns the deleted row, or (nil, nil).
	Delete(ctx context.Context, id string) (*domain.Article, error)

	// Search returns articles whose title or content contains term,
	// case-insensitively, sorted by date descending.
	Search(ctx context.Context, term string) ([]domain.Article, error)

	// ImageRefs returns the distinct non-default image references currently
	// stored, for the reconciliation sweep.
	ImageRefs(ctx context.Context) ([]string, error)
}
