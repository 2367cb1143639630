package user

import (
	"context"
)

// Repository 用户仓储接口
// 1. 接口定义在domain层，具体实现在infrastructure/persistence层
// 2. 所有返回的*User都是副本，调用方修改不会影响仓储内部数据
// 3. 所有变更对后续读取立即可见
type Repository interface {
	// Create 保存新用户，分配ID（当前最大ID+1，空仓储为1）并回填到u.ID
	Create(ctx context.Context, u *User) (uint, error)

	// FindByID 根据ID查找用户
	// 如果不存在，返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// List 返回全部用户的快照，按插入顺序
	List(ctx context.Context) ([]*User, error)

	// Update 按u.ID整体替换用户
	// 如果不存在，返回ErrUserNotFound
	Update(ctx context.Context, u *User) error

	// Delete 删除用户
	// 如果不存在，返回ErrUserNotFound
	Delete(ctx context.Context, id uint) error

	// Count 当前用户数量
	Count(ctx context.Context) (int, error)
}
