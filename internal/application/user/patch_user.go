package user

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// PatchUserUseCase 部分更新用户
type PatchUserUseCase struct {
	userService user.Service
	notifier    eventNotifier
}

// NewPatchUserUseCase 创建用例
func NewPatchUserUseCase(userService user.Service, publisher user.EventPublisher, logger zerolog.Logger) *PatchUserUseCase {
	return &PatchUserUseCase{
		userService: userService,
		notifier:    eventNotifier{publisher: publisher, logger: logger},
	}
}

// Execute 执行部分更新，成功后发布user.patched事件
func (uc *PatchUserUseCase) Execute(ctx context.Context, id uint, req PatchUserRequest) (err error) {
	ctx, finish := observe(ctx, opPatch)
	defer func() { finish(err) }()

	if err = uc.userService.PatchUser(ctx, id, req.toPatch()); err != nil {
		return err
	}

	uc.notifier.notify(ctx, user.EventPatched, id)
	return nil
}
