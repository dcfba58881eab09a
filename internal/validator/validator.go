package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ggpradas-dev/blog-project/internal/content"
	"github.com/ggpradas-dev/blog-project/internal/domain"
)

const (
	titleMinLen  = 5
	titleMaxLen  = 60
	writerMinLen = 5
	writerMaxLen = 25
)

// Validator validates article fields before persistence. Length rules count
// characters of the trimmed value, not bytes; content must parse to a
// non-empty document or be a non-blank raw string.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article entity.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	title := strings.TrimSpace(a.Title)
	writer := strings.TrimSpace(a.Writer)

	err := validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title_required"),
			validation.RuneLength(titleMinLen, titleMaxLen).Error("title_length_out_of_range"),
		),
		"writer": validation.Validate(writer,
			validation.Required.Error("writer_required"),
			validation.RuneLength(writerMinLen, writerMaxLen).Error("writer_length_out_of_range"),
		),
		"content": validation.Validate(a.Content,
			validation.Required.Error("content_required"),
			validation.By(nonEmptyContentRule),
		),
	}.Filter()
	if err != nil {
		return err
	}

	return nil
}

// nonEmptyContentRule rejects content that the editor considers empty: a
// document holding a single paragraph without children, or a blank raw
// string.
func nonEmptyContentRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if content.IsEmpty(s) {
		return validation.NewError("content_empty", "content must not be empty")
	}
	return nil
}
