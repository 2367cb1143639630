package user

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/userservice/internal/domain/user"
	"github.com/xiebiao/userservice/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/userservice/pkg/metrics"
)

// recordingPublisher 记录发布的事件，err非nil时返回错误
type recordingPublisher struct {
	mu     sync.Mutex
	events []user.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, e user.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []user.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]user.EventType, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

type fixture struct {
	list      *ListUsersUseCase
	get       *GetUserUseCase
	create    *CreateUserUseCase
	replace   *ReplaceUserUseCase
	patch     *PatchUserUseCase
	delete    *DeleteUserUseCase
	publisher *recordingPublisher
	logs      *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	v := user.NewValidator(18)
	v.Now = func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	svc := user.NewService(memory.NewUserRepository(), v)

	pub := &recordingPublisher{}
	logs := &bytes.Buffer{}
	logger := zerolog.New(logs)

	return &fixture{
		list:      NewListUsersUseCase(svc, v),
		get:       NewGetUserUseCase(svc),
		create:    NewCreateUserUseCase(svc, pub, logger),
		replace:   NewReplaceUserUseCase(svc, pub, logger),
		patch:     NewPatchUserUseCase(svc, pub, logger),
		delete:    NewDeleteUserUseCase(svc, pub, logger),
		publisher: pub,
		logs:      logs,
	}
}

func sampleRequest(birthday string) UserRequest {
	return UserRequest{
		Email:     "ivan@example.com",
		FirstName: "Ivan",
		LastName:  "Petrenko",
		Birthday:  birthday,
		Address: &AddressDTO{
			Country:     "Ukraine",
			City:        "Kyiv",
			Street:      "Khreshchatyk",
			HouseNumber: 1,
			ZipCode:     1001,
		},
		PhoneNumber: "+380441234567",
	}
}

func sp(s string) *string { return &s }

func TestUserUseCases_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.create.Execute(ctx, sampleRequest("1990-10-21"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	t.Run("查询返回完整DTO", func(t *testing.T) {
		got, err := f.get.Execute(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, &UserDTO{
			ID:        1,
			Email:     "ivan@example.com",
			FirstName: "Ivan",
			LastName:  "Petrenko",
			Birthday:  "1990-10-21",
			Address: &AddressDTO{
				Country:     "Ukraine",
				City:        "Kyiv",
				Street:      "Khreshchatyk",
				HouseNumber: 1,
				ZipCode:     1001,
			},
			PhoneNumber: "+380441234567",
		}, got)
	})

	t.Run("部分更新", func(t *testing.T) {
		require.NoError(t, f.patch.Execute(ctx, created.ID, PatchUserRequest{
			FirstName: sp("Petro"),
			Address:   &AddressDTO{Country: "Poland", City: "Warsaw"},
		}))

		got, err := f.get.Execute(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Petro", got.FirstName)
		assert.Equal(t, "Petrenko", got.LastName)
		assert.Equal(t, &AddressDTO{Country: "Poland", City: "Warsaw"}, got.Address)
	})

	t.Run("整体替换", func(t *testing.T) {
		req := sampleRequest("1985-01-02")
		req.Address = nil
		req.PhoneNumber = ""
		require.NoError(t, f.replace.Execute(ctx, created.ID, req))

		got, err := f.get.Execute(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "1985-01-02", got.Birthday)
		assert.Nil(t, got.Address)
		assert.Empty(t, got.PhoneNumber)
	})

	t.Run("删除", func(t *testing.T) {
		require.NoError(t, f.delete.Execute(ctx, created.ID))

		_, err := f.get.Execute(ctx, created.ID)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("每次成功变更发布一个事件", func(t *testing.T) {
		assert.Equal(t, []user.EventType{
			user.EventCreated, user.EventPatched, user.EventReplaced, user.EventDeleted,
		}, f.publisher.types())
	})
}

func TestUserUseCases_FailuresDoNotPublish(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.create.Execute(ctx, sampleRequest("2020-01-01"))
	assert.ErrorIs(t, err, user.ErrUserTooYoung)

	err = f.replace.Execute(ctx, 1, sampleRequest("1990-10-21"))
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	err = f.patch.Execute(ctx, 1, PatchUserRequest{Email: sp("")})
	assert.Error(t, err)

	err = f.delete.Execute(ctx, 1)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	assert.Empty(t, f.publisher.types())
}

func TestCreateUserUseCase_PublishFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.publisher.err = errors.New("broker unavailable")

	created, err := f.create.Execute(ctx, sampleRequest("1990-10-21"))
	require.NoError(t, err, "发布失败不影响创建结果")

	_, err = f.get.Execute(ctx, created.ID)
	assert.NoError(t, err)
	assert.Contains(t, f.logs.String(), "broker unavailable")
	assert.Contains(t, f.logs.String(), "user.created")
}

func TestListUsersUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	birthdays := []string{"1970-05-19", "1990-10-21", "1992-08-11", "1996-03-15", "2000-06-10"}
	for _, b := range birthdays {
		_, err := f.create.Execute(ctx, sampleRequest(b))
		require.NoError(t, err)
	}

	birthdaysOf := func(resp *ListUsersResponse) []string {
		out := make([]string, len(resp.Data))
		for i, u := range resp.Data {
			out[i] = u.Birthday
		}
		return out
	}

	t.Run("不带参数返回全部", func(t *testing.T) {
		resp, err := f.list.Execute(ctx, ListUsersRequest{})
		require.NoError(t, err)
		assert.Equal(t, birthdays, birthdaysOf(resp))
	})

	t.Run("生日区间", func(t *testing.T) {
		resp, err := f.list.Execute(ctx, ListUsersRequest{From: sp("1990-01-21"), To: sp("1996-12-21")})
		require.NoError(t, err)
		assert.Equal(t, birthdays[1:4], birthdaysOf(resp))
	})

	t.Run("分页", func(t *testing.T) {
		resp, err := f.list.Execute(ctx, ListUsersRequest{Offset: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, birthdays[2:4], birthdaysOf(resp))
	})

	t.Run("offset超出返回空列表", func(t *testing.T) {
		resp, err := f.list.Execute(ctx, ListUsersRequest{Offset: 10})
		require.NoError(t, err)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})

	t.Run("区间非法", func(t *testing.T) {
		_, err := f.list.Execute(ctx, ListUsersRequest{From: sp("1996-12-21"), To: sp("1990-01-21")})
		assert.ErrorIs(t, err, user.ErrInvalidBirthdayRange)
	})

	t.Run("分页非法", func(t *testing.T) {
		_, err := f.list.Execute(ctx, ListUsersRequest{Limit: -1})
		assert.ErrorIs(t, err, user.ErrInvalidPagination)
	})
}

func TestUsersStoredGauge(t *testing.T) {
	metrics.InitMetrics()
	f := newFixture(t)
	ctx := context.Background()

	gauge := func() float64 {
		var m dto.Metric
		require.NoError(t, metrics.UsersStored.Write(&m))
		return m.GetGauge().GetValue()
	}

	a, err := f.create.Execute(ctx, sampleRequest("1990-10-21"))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, sampleRequest("1992-08-11"))
	require.NoError(t, err)
	assert.Equal(t, float64(2), gauge())

	require.NoError(t, f.delete.Execute(ctx, a.ID))
	assert.Equal(t, float64(1), gauge())

	t.Run("删除失败不改变数量", func(t *testing.T) {
		assert.Error(t, f.delete.Execute(ctx, a.ID))
		assert.Equal(t, float64(1), gauge())
	})
}
