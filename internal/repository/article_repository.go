package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ggpradas-dev/blog-project/internal/domain"
)

const articleColumns = "id, title, content, writer, date, image"

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create persists a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, content, writer, date, image)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, article.ID, article.Title, article.Content, article.Writer, article.Date, article.Image)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

// List returns articles sorted by date descending, newest first. A
// non-positive limit returns everything.
func (r *PostgresArticleRepository) List(ctx context.Context, limit int) ([]domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		ORDER BY date DESC
	`, articleColumns)
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetByID returns the article with the given id, or (nil, nil) when missing.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE id = $1
	`, articleColumns), id).Scan(&a.ID, &a.Title, &a.Content, &a.Writer, &a.Date, &a.Image)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &a, nil
}

// Update overwrites the mutable fields of an existing article.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE articles
		SET title = $2, content = $3, writer = $4, image = $5
		WHERE id = $1
		RETURNING %s
	`, articleColumns), article.ID, article.Title, article.Content, article.Writer, article.Image).
		Scan(&a.ID, &a.Title, &a.Content, &a.Writer, &a.Date, &a.Image)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	return &a, nil
}

// UpdateImage sets only the image reference.
func (r *PostgresArticleRepository) UpdateImage(ctx context.Context, id, image string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE articles
		SET image = $2
		WHERE id = $1
		RETURNING %s
	`, articleColumns), id, image).
		Scan(&a.ID, &a.Title, &a.Content, &a.Writer, &a.Date, &a.Image)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update article image: %w", err)
	}

	return &a, nil
}

// Delete removes the article and returns the deleted row.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		DELETE FROM articles
		WHERE id = $1
		RETURNING %s
	`, articleColumns), id).
		Scan(&a.ID, &a.Title, &a.Content, &a.Writer, &a.Date, &a.Image)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete article: %w", err)
	}

	return &a, nil
}

// Search returns articles whose title or content contains term as a
// case-insensitive substring, sorted by date descending.
func (r *PostgresArticleRepository) Search(ctx context.Context, term string) ([]domain.Article, error) {
	pattern := "%" + escapeLikePattern(term) + "%"

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE title ILIKE $1 OR content ILIKE $1
		ORDER BY date DESC
	`, articleColumns), pattern)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// ImageRefs returns the non-default image references currently stored.
func (r *PostgresArticleRepository) ImageRefs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT image
		FROM articles
		WHERE image <> $1
	`, domain.DefaultImage)
	if err != nil {
		return nil, fmt.Errorf("query image refs: %w", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scan image ref: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Writer, &a.Date, &a.Image); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// escapeLikePattern escapes LIKE metacharacters so a search term is always
// treated as a literal substring.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
