// Package event 用户事件发布的基础设施实现
package event

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/userservice/internal/domain/user"
	"github.com/xiebiao/userservice/internal/infrastructure/config"
	"github.com/xiebiao/userservice/pkg/circuitbreaker"
	"github.com/xiebiao/userservice/pkg/mq"
)

// NopPublisher 丢弃所有事件（未启用消息队列时使用）
type NopPublisher struct{}

// Publish 什么都不做
func (NopPublisher) Publish(ctx context.Context, e user.Event) error {
	return nil
}

// messagePublisher mq.Publisher的发布方法
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// MQPublisher 通过RabbitMQ发布用户事件
type MQPublisher struct {
	publisher messagePublisher
}

// NewMQPublisher 包装mq.Publisher
func NewMQPublisher(p messagePublisher) *MQPublisher {
	return &MQPublisher{publisher: p}
}

// Publish 按事件类型选择路由键后发布
func (p *MQPublisher) Publish(ctx context.Context, e user.Event) error {
	return p.publisher.Publish(ctx, e.RoutingKey(), e)
}

// BreakerPublisher 熔断保护的事件发布者
// 熔断打开期间直接返回circuitbreaker.ErrOpenState，不再访问消息队列
type BreakerPublisher struct {
	next    user.EventPublisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewBreakerPublisher 用breaker包装next
func NewBreakerPublisher(next user.EventPublisher, breaker *circuitbreaker.CircuitBreaker) *BreakerPublisher {
	return &BreakerPublisher{next: next, breaker: breaker}
}

// Publish 经熔断器发布
func (p *BreakerPublisher) Publish(ctx context.Context, e user.Event) error {
	return p.breaker.Execute(ctx, func(ctx context.Context) error {
		return p.next.Publish(ctx, e)
	})
}

func newBreaker(cfg config.MQConfig, logger zerolog.Logger) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Settings{
		Name:        "mq-publisher",
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(cfg.BreakerFailures),
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("熔断器状态变化")
		},
	})
}

// NewPublisher 根据配置创建事件发布者
// mq.enabled=false时返回NopPublisher，否则返回熔断保护的MQ发布者；返回的cleanup负责关闭连接
func NewPublisher(cfg *config.Config, logger zerolog.Logger) (user.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return NopPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := p.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭消息发布者失败")
		}
	}
	return NewBreakerPublisher(NewMQPublisher(p), newBreaker(cfg.MQ, logger)), cleanup, nil
}
