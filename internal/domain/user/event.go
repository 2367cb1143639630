package user

import (
	"context"
	"time"
)

// EventType 用户变更事件类型
type EventType string

const (
	EventCreated  EventType = "created"
	EventReplaced EventType = "replaced"
	EventPatched  EventType = "patched"
	EventDeleted  EventType = "deleted"
)

// Event 用户变更事件
// 只携带ID，订阅方需要完整数据时自行查询
type Event struct {
	Type       EventType `json:"type"`
	UserID     uint      `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent 创建事件，发生时间为当前UTC时间
func NewEvent(t EventType, userID uint) Event {
	return Event{
		Type:       t,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

// RoutingKey 消息路由键，如user.created
func (e Event) RoutingKey() string {
	return "user." + string(e.Type)
}

// EventPublisher 事件发布接口，实现位于infrastructure/event
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
