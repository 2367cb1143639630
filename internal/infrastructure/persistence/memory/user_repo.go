package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// userRepository 用户仓储实现（内存）
// 1. 实现domain/user/repository.go定义的接口
// 2. 切片保存插入顺序，读写锁保护
// 3. 写入时存副本，读取时返回副本，调用方拿不到内部数据的引用
type userRepository struct {
	mu    sync.RWMutex
	users []*user.User
}

// NewUserRepository 创建内存用户仓储
func NewUserRepository() user.Repository {
	return &userRepository{
		users: make([]*user.User, 0),
	}
}

// Create 创建用户
// ID = 当前最大ID + 1（空仓储为1）。删除当前最大ID的用户后，该ID会被下一次创建复用
// 取最大值与追加在同一把写锁内完成，并发创建不会得到相同ID
func (r *userRepository) Create(ctx context.Context, u *user.User) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID uint
	for _, existing := range r.users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	u.ID = maxID + 1
	r.users = append(r.users, u.Clone())
	return u.ID, nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i].Clone(), nil
	}
	return nil, user.ErrUserNotFound
}

// List 返回全部用户的快照
func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*user.User, len(r.users))
	for i, u := range r.users {
		snapshot[i] = u.Clone()
	}
	return snapshot, nil
}

// Update 原位替换用户，保持其插入位置
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(u.ID)
	if i < 0 {
		return user.ErrUserNotFound
	}
	r.users[i] = u.Clone()
	return nil
}

// Delete 删除用户
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return user.ErrUserNotFound
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// Count 当前用户数量
func (r *userRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// indexOf 线性查找ID所在下标，调用方持有锁
func (r *userRepository) indexOf(id uint) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
