package mq

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChannel 记录发布的消息
type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type testUserEvent struct {
	Type   string `json:"type"`
	UserID uint   `json:"user_id"`
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("JSON编码并持久化投递", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{channel: ch, exchange: "users.events", logger: zerolog.Nop()}

		err := p.Publish(context.Background(), "user.created", testUserEvent{Type: "created", UserID: 7})
		require.NoError(t, err)

		require.Len(t, ch.published, 1)
		assert.Equal(t, "user.created", ch.keys[0])
		assert.Equal(t, "application/json", ch.published[0].ContentType)
		assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

		var got testUserEvent
		require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
		assert.Equal(t, testUserEvent{Type: "created", UserID: 7}, got)
	})

	t.Run("通道错误向上返回", func(t *testing.T) {
		boom := errors.New("channel closed")
		p := &Publisher{channel: &fakeChannel{err: boom}, exchange: "users.events", logger: zerolog.Nop()}

		err := p.Publish(context.Background(), "user.deleted", testUserEvent{})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("无法序列化的消息", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{channel: ch, logger: zerolog.Nop()}

		err := p.Publish(context.Background(), "user.created", make(chan int))
		assert.Error(t, err)
		assert.Empty(t, ch.published)
	})

	t.Run("Close关闭通道", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{channel: ch, logger: zerolog.Nop()}
		require.NoError(t, p.Close())
		assert.True(t, ch.closed)
	})
}

// TestPublisher_RabbitMQ 需要本地RabbitMQ，设置USERSERVICE_TEST_AMQP_URL后运行
func TestPublisher_RabbitMQ(t *testing.T) {
	url := os.Getenv("USERSERVICE_TEST_AMQP_URL")
	if url == "" {
		t.Skip("未设置USERSERVICE_TEST_AMQP_URL，跳过RabbitMQ测试")
	}

	p, err := NewPublisher(url, "userservice.test.events", "topic", zerolog.Nop())
	require.NoError(t, err, "创建Publisher失败")
	defer p.Close()

	err = p.Publish(context.Background(), "user.created", testUserEvent{Type: "created", UserID: 1})
	assert.NoError(t, err)
}
