package service

import (
	"context"

	"github.com/Snkumar21/Rentor-Website/internal/models"
	"github.com/Snkumar21/Rentor-Website/internal/search"
	"github.com/Snkumar21/Rentor-Website/internal/store"

	"github.com/rs/zerolog/log"
)

type PropertyService struct {
	store store.Store
}

func NewPropertyService(st store.Store) *PropertyService {
	return &PropertyService{store: st}
}

func (s *PropertyService) Post(ctx context.Context, post *models.PropertyPost) error {
	if err := s.store.InsertPost(ctx, post); err != nil {
		return fail(ErrStore, "Error posting property", err)
	}
	return nil
}

// List 返回全部房源，最新发布的在前。
func (s *PropertyService) List(ctx context.Context) ([]models.PropertyPost, error) {
	posts, err := s.store.ListPostsByRecency(ctx)
	if err != nil {
		return nil, fail(ErrStore, "Error fetching posts", err)
	}
	return posts, nil
}

// Search 按关键字检索房源。空白查询直接拒绝，不访问存储。
func (s *PropertyService) Search(ctx context.Context, text string) ([]models.PropertyPost, error) {
	q, err := search.Parse(text)
	if err != nil {
		return nil, fail(ErrValidation, "Search query cannot be empty", err)
	}
	log.Debug().Strs("terms", q.Terms).Strs("patterns", q.Patterns()).Msg("search properties")

	posts, err := s.store.SearchPosts(ctx, q)
	if err != nil {
		return nil, fail(ErrStore, "Database error", err)
	}
	if len(posts) == 0 {
		return nil, fail(ErrNotFound, "No properties found", nil)
	}
	return posts, nil
}
