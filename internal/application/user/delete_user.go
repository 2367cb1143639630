package user

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// DeleteUserUseCase 删除用户
type DeleteUserUseCase struct {
	userService user.Service
	notifier    eventNotifier
}

// NewDeleteUserUseCase 创建用例
func NewDeleteUserUseCase(userService user.Service, publisher user.EventPublisher, logger zerolog.Logger) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userService: userService,
		notifier:    eventNotifier{publisher: publisher, logger: logger},
	}
}

// Execute 执行删除，用户不存在返回ErrUserNotFound
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, finish := observe(ctx, opDelete)
	defer func() { finish(err) }()

	if err = uc.userService.DeleteUser(ctx, id); err != nil {
		return err
	}

	syncUsersStored(ctx, uc.userService)
	uc.notifier.notify(ctx, user.EventDeleted, id)
	return nil
}
