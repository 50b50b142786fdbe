package service

import (
	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/repository"
)

// UserService 用户目录服务（只读）
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserFetchFail
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List 分页获取用户列表
func (s *UserService) List(page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.userRepo.List(page, pageSize)
}
