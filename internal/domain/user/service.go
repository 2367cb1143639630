package user

import (
	"context"
)

// Service 用户领域服务
// 1. 仓储的唯一调用方，所有写操作先校验后变更
// 2. 依赖Repository接口，不依赖具体实现
// 3. 不记录日志、不重试，错误原样返回给调用方
type Service interface {
	// ListUsers 按条件查询用户列表
	ListUsers(ctx context.Context, filter ListFilter) ([]*User, error)

	// GetUser 根据ID获取用户，不存在返回ErrUserNotFound
	GetUser(ctx context.Context, id uint) (*User, error)

	// CreateUser 校验资料并创建用户，返回带ID的用户
	CreateUser(ctx context.Context, p Profile) (*User, error)

	// ReplaceUser 校验资料并整体替换用户
	ReplaceUser(ctx context.Context, id uint, p Profile) error

	// PatchUser 校验提议并部分更新用户
	PatchUser(ctx context.Context, id uint, p Patch) error

	// DeleteUser 删除用户，不存在返回ErrUserNotFound
	DeleteUser(ctx context.Context, id uint) error

	// CountUsers 当前用户数量
	CountUsers(ctx context.Context) (int, error)
}

type service struct {
	repo      Repository
	validator *Validator
}

// NewService 创建用户服务
func NewService(repo Repository, validator *Validator) Service {
	return &service{
		repo:      repo,
		validator: validator,
	}
}

// ListUsers 取仓储快照后交给查询引擎
func (s *service) ListUsers(ctx context.Context, filter ListFilter) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(users, filter), nil
}

// GetUser 根据ID获取用户
func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateUser 创建用户
// 业务规则：
// 1. 电话格式
// 2. 生日格式、不晚于今天、满足最小年龄
func (s *service) CreateUser(ctx context.Context, p Profile) (*User, error) {
	birthday, err := s.validator.ValidateProfile(p)
	if err != nil {
		return nil, err
	}

	u := NewUser(p, birthday)
	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ReplaceUser 整体替换用户，ID沿用已有记录
func (s *service) ReplaceUser(ctx context.Context, id uint, p Profile) error {
	birthday, err := s.validator.ValidateProfile(p)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	u := NewUser(p, birthday)
	u.ID = existing.ID
	return s.repo.Update(ctx, u)
}

// PatchUser 部分更新用户
// 读取与替换是两次独立的仓储调用，同一ID的并发Patch可能交错
func (s *service) PatchUser(ctx context.Context, id uint, p Patch) error {
	birthday, err := s.validator.ValidatePatch(p)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	merged := p.ApplyTo(*existing, birthday)
	return s.repo.Update(ctx, &merged)
}

// DeleteUser 删除用户
func (s *service) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// CountUsers 当前用户数量
func (s *service) CountUsers(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
