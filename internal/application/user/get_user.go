package user

import (
	"context"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// GetUserUseCase 按ID查询用户
type GetUserUseCase struct {
	userService user.Service
}

// NewGetUserUseCase 创建查询用例
func NewGetUserUseCase(userService user.Service) *GetUserUseCase {
	return &GetUserUseCase{
		userService: userService,
	}
}

// Execute 执行查询，用户不存在返回ErrUserNotFound
func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (resp *UserDTO, err error) {
	ctx, finish := observe(ctx, opGet)
	defer func() { finish(err) }()

	u, err := uc.userService.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toUserDTO(u)
	return &dto, nil
}
