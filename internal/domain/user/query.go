package user

import (
	"time"
)

// BirthdayRange 生日区间（两端均为开区间，nil表示不限制）
// From必须早于To，由Validator在边界处保证，ApplyFilter不再校验
type BirthdayRange struct {
	From *time.Time
	To   *time.Time
}

// Pagination 分页参数
// Offset跳过的条数，Limit取多少条（0表示不限）
type Pagination struct {
	Offset int
	Limit  int
}

// ListFilter 列表查询条件
// 零值表示不过滤、不分页
type ListFilter struct {
	Range      *BirthdayRange
	Pagination *Pagination
}

// ApplyFilter 先按生日过滤，再分页
// 1. From非空：只保留生日晚于From的用户
// 2. To非空：只保留生日早于To的用户
// 3. 没有分页参数：返回过滤结果
// 4. Offset超出过滤结果长度：返回空切片（不是错误）
// 5. 否则跳过Offset条，取Limit条（Limit=0取剩余全部）
// 结果保持输入顺序，不做二次排序
func ApplyFilter(users []*User, filter ListFilter) []*User {
	filtered := users
	if r := filter.Range; r != nil && (r.From != nil || r.To != nil) {
		filtered = make([]*User, 0, len(users))
		for _, u := range users {
			if r.From != nil && !u.Birthday.After(*r.From) {
				continue
			}
			if r.To != nil && !u.Birthday.Before(*r.To) {
				continue
			}
			filtered = append(filtered, u)
		}
	}

	p := filter.Pagination
	if p == nil {
		return filtered
	}

	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(filtered) {
		return []*User{}
	}

	end := len(filtered)
	if p.Limit > 0 && offset+p.Limit < end {
		end = offset + p.Limit
	}
	return filtered[offset:end]
}
