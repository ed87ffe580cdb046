package domain

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("title and content are required")
var ErrArticleNotFound = errors.New("article not found")
var ErrForbidden = errors.New("access forbidden")

// Article is the core aggregate. AuthorID is fixed at creation; only the
// author may mutate or delete the record.
type Article struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
