package service

import (
	"context"
	"errors"
	"time"

	"github.com/Snkumar21/Rentor-Website/internal/auth"
	"github.com/Snkumar21/Rentor-Website/internal/models"
	"github.com/Snkumar21/Rentor-Website/internal/store"
)

// AccountService 负责注册与登录。
type AccountService struct {
	store  store.Store
	issuer *auth.Issuer
}

func NewAccountService(st store.Store, issuer *auth.Issuer) *AccountService {
	return &AccountService{store: st, issuer: issuer}
}

// LoginResult 登录成功后返回的数据。
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *models.Account
}

// Register 创建新账号。先按用户名查重，最终以唯一索引为准，并发注册同名时只有一个成功。
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.Account, error) {
	if username == "" || password == "" {
		return nil, fail(ErrValidation, "Username and password are required", nil)
	}
	_, err := s.store.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, fail(ErrDuplicateUser, "User already exists", nil)
	case !errors.Is(err, store.ErrNotFound):
		return nil, fail(ErrStore, "Error checking user", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fail(ErrHash, "Error hashing password", err)
	}
	account := &models.Account{Username: username, PasswordHash: hash}
	if err := s.store.InsertAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, fail(ErrDuplicateUser, "User already exists", err)
		}
		return nil, fail(ErrStore, "Error registering user", err)
	}
	return account, nil
}

// Login 校验用户名密码并签发访问令牌。
func (s *AccountService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fail(ErrValidation, "Username and password are required", nil)
	}
	account, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fail(ErrUserNotFound, "User not found", nil)
		}
		return nil, fail(ErrStore, "Error logging in", err)
	}
	ok, err := auth.VerifyPassword(account.PasswordHash, password)
	if err != nil {
		return nil, fail(ErrHash, "Error checking password", err)
	}
	if !ok {
		return nil, fail(ErrInvalidPassword, "Invalid password", nil)
	}
	token, exp, err := s.issuer.Issue(account.ID)
	if err != nil {
		return nil, fail(ErrHash, "Error logging in", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, Account: account}, nil
}
