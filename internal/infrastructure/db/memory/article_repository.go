package memory

import (
	"context"
	"sync"

	"github.com/inkpress/article-service/internal/core/domain"
)

// ArticleRepository is the in-memory article store. List preserves insertion
// order; deleting a record never frees its id for reuse.
type ArticleRepository struct {
	mu       sync.Mutex
	articles []domain.Article
	nextID   int64
}

func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{nextID: 1}
}

func (r *ArticleRepository) Create(_ context.Context, article *domain.Article) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *article
	stored.ID = r.nextID
	r.nextID++
	r.articles = append(r.articles, stored)

	clone := stored
	return &clone, nil
}

func (r *ArticleRepository) List(_ context.Context) ([]*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Article, 0, len(r.articles))
	for i := range r.articles {
		clone := r.articles[i]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *ArticleRepository) FindByID(_ context.Context, id int64) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			clone := r.articles[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (r *ArticleRepository) Update(_ context.Context, article *domain.Article) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.articles {
		if r.articles[i].ID == article.ID {
			r.articles[i] = *article
			clone := r.articles[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (r *ArticleRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return domain.ErrArticleNotFound
}
