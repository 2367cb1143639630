package user

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// ReplaceUserUseCase 整体替换用户
type ReplaceUserUseCase struct {
	userService user.Service
	notifier    eventNotifier
}

// NewReplaceUserUseCase 创建用例
func NewReplaceUserUseCase(userService user.Service, publisher user.EventPublisher, logger zerolog.Logger) *ReplaceUserUseCase {
	return &ReplaceUserUseCase{
		userService: userService,
		notifier:    eventNotifier{publisher: publisher, logger: logger},
	}
}

// Execute 执行替换，成功后发布user.replaced事件
func (uc *ReplaceUserUseCase) Execute(ctx context.Context, id uint, req UserRequest) (err error) {
	ctx, finish := observe(ctx, opReplace)
	defer func() { finish(err) }()

	if err = uc.userService.ReplaceUser(ctx, id, req.toProfile()); err != nil {
		return err
	}

	uc.notifier.notify(ctx, user.EventReplaced, id)
	return nil
}
