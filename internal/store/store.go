// Package store 定义业务层依赖的最小存储接口，以及基于 gorm 的实现。
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Snkumar21/Rentor-Website/internal/models"
	"github.com/Snkumar21/Rentor-Website/internal/search"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store 是 handler 与具体数据库之间的仓储接口。
type Store interface {
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	InsertAccount(ctx context.Context, account *models.Account) error
	InsertContact(ctx context.Context, msg *models.ContactMessage) error
	InsertPost(ctx context.Context, post *models.PropertyPost) error
	ListPostsByRecency(ctx context.Context) ([]models.PropertyPost, error)
	SearchPosts(ctx context.Context, q search.Query) ([]models.PropertyPost, error)
}

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &account, nil
}

// InsertAccount 依赖 username 唯一索引，重复时返回 ErrDuplicateKey。
func (s *GormStore) InsertAccount(ctx context.Context, account *models.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("insert user: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *GormStore) InsertContact(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (s *GormStore) InsertPost(ctx context.Context, post *models.PropertyPost) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// ListPostsByRecency 按 created_at 倒序返回全部房源，同一时间按 id 倒序。
func (s *GormStore) ListPostsByRecency(ctx context.Context) ([]models.PropertyPost, error) {
	posts := make([]models.PropertyPost, 0)
	if err := s.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// SearchPosts 不排序，保持数据库的自然返回顺序。
func (s *GormStore) SearchPosts(ctx context.Context, q search.Query) ([]models.PropertyPost, error) {
	posts := make([]models.PropertyPost, 0)
	if err := s.db.WithContext(ctx).Where(q.Expression()).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

// isDuplicateKey 识别唯一约束冲突。开启 TranslateError 后 gorm 会统一成
// gorm.ErrDuplicatedKey；未翻译的驱动错误按消息兜底。
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}
