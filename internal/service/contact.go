package service

import (
	"context"

	"github.com/Snkumar21/Rentor-Website/internal/models"
	"github.com/Snkumar21/Rentor-Website/internal/store"
)

// ContactService 保存访客留言。
type ContactService struct {
	store store.Store
}

func NewContactService(st store.Store) *ContactService {
	return &ContactService{store: st}
}

func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.store.InsertContact(ctx, msg); err != nil {
		return fail(ErrStore, "Error submitting message", err)
	}
	return nil
}
