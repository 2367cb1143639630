package user

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// CreateUserUseCase 创建用户用例
// 1. 调用领域服务校验并保存
// 2. 成功后更新存储用户数并发布user.created事件
type CreateUserUseCase struct {
	userService user.Service
	notifier    eventNotifier
}

// NewCreateUserUseCase 创建用例
func NewCreateUserUseCase(userService user.Service, publisher user.EventPublisher, logger zerolog.Logger) *CreateUserUseCase {
	return &CreateUserUseCase{
		userService: userService,
		notifier:    eventNotifier{publisher: publisher, logger: logger},
	}
}

// CreateUserResponse 创建响应，只返回新用户ID
type CreateUserResponse struct {
	ID uint `json:"id"`
}

// Execute 执行创建
func (uc *CreateUserUseCase) Execute(ctx context.Context, req UserRequest) (resp *CreateUserResponse, err error) {
	ctx, finish := observe(ctx, opCreate)
	defer func() { finish(err) }()

	u, err := uc.userService.CreateUser(ctx, req.toProfile())
	if err != nil {
		return nil, err
	}

	syncUsersStored(ctx, uc.userService)
	uc.notifier.notify(ctx, user.EventCreated, u.ID)

	return &CreateUserResponse{ID: u.ID}, nil
}
