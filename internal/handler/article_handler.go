package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ggpradas-dev/blog-project/internal/domain"
	"github.com/ggpradas-dev/blog-project/internal/middleware"
	"github.com/ggpradas-dev/blog-project/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	maxUploadSize  int64
}

// NewArticleHandler creates a new ArticleHandler. maxUploadSize caps the
// accepted image size in bytes.
func NewArticleHandler(articleService service.ArticleServiceInterface, maxUploadSize int64) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		maxUploadSize:  maxUploadSize,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Writer  string `json:"writer"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:      article.ID,
		Title:   article.Title,
		Content: article.Content,
		Writer:  article.Writer,
		Date:    article.Date.Format(TimeFormat),
		Image:   article.Image,
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, toArticleResponse(&articles[i]))
	}
	return responses
}

func errorJSON(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// CreateArticle handles POST /articulo-nuevo
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var in service.CreateArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArticle) {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[request_id=%s] Failed to create article: %v", middleware.GetRequestID(c), err)
		errorJSON(c, http.StatusBadRequest, "failed to save article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"article": toArticleResponse(article),
	})
}

// ListArticles handles GET /articulos and GET /articulos/:limit
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	limit := 0
	if raw := c.Param("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errorJSON(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	articles, err := h.articleService.ListArticles(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			errorJSON(c, http.StatusNotFound, "no articles found")
			return
		}
		log.Printf("[request_id=%s] Failed to list articles: %v", middleware.GetRequestID(c), err)
		errorJSON(c, http.StatusInternalServerError, "failed to retrieve articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"articles": toArticleResponses(articles),
	})
}

// GetArticle handles GET /articulo/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		errorJSON(c, http.StatusNotFound, "article not found")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "article not found")
			return
		}
		log.Printf("[request_id=%s] Failed to get article %s: %v", middleware.GetRequestID(c), id, err)
		errorJSON(c, http.StatusInternalServerError, "failed to retrieve article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"article": toArticleResponse(article),
	})
}

// UpdateArticle handles PUT /articulo/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		errorJSON(c, http.StatusNotFound, "article not found")
		return
	}

	var in service.UpdateArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArticle):
			errorJSON(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "article not found")
		default:
			log.Printf("[request_id=%s] Failed to update article %s: %v", middleware.GetRequestID(c), id, err)
			errorJSON(c, http.StatusInternalServerError, "failed to update article")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"updatedArticle": toArticleResponse(article),
	})
}

// DeleteArticle handles DELETE /articulo/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		errorJSON(c, http.StatusNotFound, "article not found")
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "article not found")
		case errors.Is(err, domain.ErrImageDelete):
			log.Printf("[request_id=%s] Article %s deleted but image removal failed: %v", middleware.GetRequestID(c), id, err)
			errorJSON(c, http.StatusInternalServerError, "article deleted but image removal failed")
		default:
			log.Printf("[request_id=%s] Failed to delete article %s: %v", middleware.GetRequestID(c), id, err)
			errorJSON(c, http.StatusInternalServerError, "failed to delete article")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// UploadImage handles POST /nueva-imagen/:id
func (h *ArticleHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		errorJSON(c, http.StatusNotFound, "article not found")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		errorJSON(c, http.StatusBadRequest, "file exceeds the maximum allowed size")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		errorJSON(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	if int64(len(data)) > h.maxUploadSize {
		errorJSON(c, http.StatusBadRequest, "file exceeds the maximum allowed size")
		return
	}

	article, url, err := h.articleService.AttachImage(c.Request.Context(), id, data, header.Filename, contentType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "article not found")
		case errors.Is(err, domain.ErrImageDelete):
			log.Printf("[request_id=%s] Failed to replace image for article %s: %v", middleware.GetRequestID(c), id, err)
			errorJSON(c, http.StatusInternalServerError, "failed to remove the previous image")
		case errors.Is(err, domain.ErrImageUpload):
			log.Printf("[request_id=%s] Failed to upload image for article %s: %v", middleware.GetRequestID(c), id, err)
			errorJSON(c, http.StatusInternalServerError, "failed to upload the image")
		default:
			log.Printf("[request_id=%s] Failed to attach image to article %s: %v", middleware.GetRequestID(c), id, err)
			errorJSON(c, http.StatusInternalServerError, "failed to update the article image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"updatedImage": toArticleResponse(article),
		"imageUrl":     url,
	})
}

// GetImage handles GET /image/:file
func (h *ArticleHandler) GetImage(c *gin.Context) {
	name := c.Param("file")

	url, err := h.articleService.ImageURL(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			errorJSON(c, http.StatusNotFound, "image not found")
			return
		}
		log.Printf("[request_id=%s] Failed to resolve image %s: %v", middleware.GetRequestID(c), name, err)
		errorJSON(c, http.StatusInternalServerError, "failed to retrieve image")
		return
	}

	c.Redirect(http.StatusFound, url)
}

// SearchArticles handles GET /search/:term
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	term := c.Param("term")

	articles, err := h.articleService.SearchArticles(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			errorJSON(c, http.StatusNotFound, "no matches found")
			return
		}
		log.Printf("[request_id=%s] Failed to search articles: %v", middleware.GetRequestID(c), err)
		errorJSON(c, http.StatusInternalServerError, "failed to search articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"articles": toArticleResponses(articles),
	})
}
