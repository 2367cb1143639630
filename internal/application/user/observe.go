package user

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
	"github.com/xiebiao/userservice/pkg/metrics"
	"github.com/xiebiao/userservice/pkg/tracing"
)

const tracerName = "application/user"

// 操作名，用作Span名后缀和指标标签
const (
	opList    = "list"
	opGet     = "get"
	opCreate  = "create"
	opReplace = "replace"
	opPatch   = "patch"
	opDelete  = "delete"
)

var spanNames = map[string]string{
	opList:    "user.ListUsers",
	opGet:     "user.GetUser",
	opCreate:  "user.CreateUser",
	opReplace: "user.ReplaceUser",
	opPatch:   "user.PatchUser",
	opDelete:  "user.DeleteUser",
}

// observe 为一次操作开启Span，返回的finish负责结束Span并记录指标
//
//	ctx, finish := observe(ctx, opGet)
//	defer func() { finish(err) }()
func observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, spanNames[op])
	return ctx, func(err error) {
		tracing.EndSpan(span, err)
		metrics.RecordUserOperation(op, err, time.Since(start).Seconds())
	}
}

// syncUsersStored 创建、删除后按仓储实际数量刷新users_stored
func syncUsersStored(ctx context.Context, svc user.Service) {
	if n, err := svc.CountUsers(ctx); err == nil {
		metrics.SetUsersStored(n)
	}
}

// eventNotifier 变更成功后发布事件
// 发布失败只记录日志，不影响已经完成的变更
type eventNotifier struct {
	publisher user.EventPublisher
	logger    zerolog.Logger
}

func (n eventNotifier) notify(ctx context.Context, t user.EventType, userID uint) {
	e := user.NewEvent(t, userID)
	if err := n.publisher.Publish(ctx, e); err != nil {
		n.logger.Warn().
			Err(err).
			Str("event", e.RoutingKey()).
			Uint("user_id", userID).
			Str("trace_id", tracing.ExtractTraceID(ctx)).
			Msg("发布用户事件失败")
	}
}
