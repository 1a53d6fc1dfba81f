package service

import (
	"context"
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/password"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("no user with that email")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService 凭证校验与当前用户解析；会话绑定本身由 HTTP 层负责
type AuthService interface {
	Register(ctx context.Context, email, plainPassword, name string) (*model.User, error)
	Login(ctx context.Context, email, plainPassword string) (*model.User, error)
	UserByID(ctx context.Context, id uint) (*model.User, error)
}

type authService struct {
	db     *gorm.DB
	users  repository.UserRepository
	hasher *password.Hasher
	titler cases.Caser
}

func NewAuthService(db *gorm.DB, users repository.UserRepository, hasher *password.Hasher) AuthService {
	return &authService{
		db:     db,
		users:  users,
		hasher: hasher,
		titler: cases.Title(language.English),
	}
}

// Register 查重与插入在同一事务内；并发撞车由唯一索引兜底
func (s *authService) Register(ctx context.Context, email, plainPassword, name string) (*model.User, error) {
	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:    email,
		Password: hash,
		Name:     s.titler.String(name),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrEmailTaken
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, plainPassword string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !password.Verify(user.Password, plainPassword) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

func (s *authService) UserByID(ctx context.Context, id uint) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}
