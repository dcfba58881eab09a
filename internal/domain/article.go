package domain

import "time"

// DefaultImage is the sentinel image reference for articles without a
// custom image. It never names a stored blob.
const DefaultImage = "default.png"

// Article represents a blog article.
type Article struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Writer  string    `json:"writer"`
	Date    time.Time `json:"date"`
	Image   string    `json:"image"`
}

// HasCustomImage reports whether the article references an uploaded blob
// rather than the default image.
func (a *Article) HasCustomImage() bool {
	return a.Image != "" && a.Image != DefaultImage
}
