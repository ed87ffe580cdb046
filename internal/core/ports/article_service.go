package ports

import (
	"context"

	"github.com/inkpress/article-service/internal/core/domain"
)

type ArticleService interface {
	Create(ctx context.Context, authorID int64, title, content string) (*domain.Article, error)
	List(ctx context.Context) ([]*domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	// Update applies non-empty fields only and refreshes UpdatedAt. The caller
	// must be the article's author.
	Update(ctx context.Context, id, callerID int64, title, content string) (*domain.Article, error)
	Delete(ctx context.Context, id, callerID int64) error
}
