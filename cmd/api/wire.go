//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appuser "github.com/xiebiao/userservice/internal/application/user"
	"github.com/xiebiao/userservice/internal/domain/user"
	"github.com/xiebiao/userservice/internal/infrastructure/cache"
	"github.com/xiebiao/userservice/internal/infrastructure/config"
	"github.com/xiebiao/userservice/internal/infrastructure/event"
	"github.com/xiebiao/userservice/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/userservice/internal/interface/http/handler"
	"github.com/xiebiao/userservice/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖：日志、链路追踪、仓储、事件发布、幂等键缓存
var infrastructureSet = wire.NewSet(
	provideLogger,
	provideTracing,
	memory.NewUserRepository,
	event.NewPublisher,
	cache.NewIdempotencyStore,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	provideValidator,
	user.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewListUsersUseCase,
	appuser.NewGetUserUseCase,
	appuser.NewCreateUserUseCase,
	appuser.NewReplaceUserUseCase,
	appuser.NewPatchUserUseCase,
	appuser.NewDeleteUserUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	wire.Bind(new(handler.IdempotencyStore), new(*cache.IdempotencyStore)),
	handler.NewUserHandler,
	router.New,
)

// InitializeApp 初始化整个应用
// cleanup按创建的逆序停止缓存清理、关闭消息连接、刷出未导出的Span
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		newApp,
	)
	return nil, nil, nil
}
