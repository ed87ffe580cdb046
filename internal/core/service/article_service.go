package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/article-service/internal/core/domain"
	"github.com/inkpress/article-service/internal/core/ports"
)

// ArticleService implements article CRUD with per-article ownership checks.
type ArticleService struct {
	repo   ports.ArticleRepository
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger}
}

func (s *ArticleService) Create(ctx context.Context, authorID int64, title, content string) (*domain.Article, error) {
	if title == "" || content == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Article{
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("article_id", created.ID).Int64("author_id", authorID).Msg("article created")

	return created, nil
}

// List returns every article in insertion order. Any authenticated caller
// sees all articles; there is no per-user filtering.
func (s *ArticleService) List(ctx context.Context) ([]*domain.Article, error) {
	return s.repo.List(ctx)
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies non-empty fields and refreshes UpdatedAt unconditionally.
// An empty string means "leave unchanged", not "clear the field".
func (s *ArticleService) Update(ctx context.Context, id, callerID int64, title, content string) (*domain.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != callerID {
		return nil, domain.ErrForbidden
	}

	if title != "" {
		article.Title = title
	}
	if content != "" {
		article.Content = content
	}
	article.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, article)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("article_id", id).Int64("author_id", callerID).Msg("article updated")

	return updated, nil
}

func (s *ArticleService) Delete(ctx context.Context, id, callerID int64) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if article.AuthorID != callerID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("article_id", id).Int64("author_id", callerID).Msg("article deleted")

	return nil
}
