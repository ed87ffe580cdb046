package ports

import (
	"context"

	"github.com/inkpress/article-service/internal/core/domain"
)

// ArticleRepository persists articles in process memory.
type ArticleRepository interface {
	// Create assigns the next sequential id and stores the article.
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// List returns every article in insertion order.
	List(ctx context.Context) ([]*domain.Article, error)
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	// Update replaces the stored record with the given one, keyed by its id.
	Update(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}
