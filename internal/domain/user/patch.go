package user

import (
	"time"
)

// Patch 部分更新提议
// 每个字段都是指针：nil表示"不修改"，指向空串表示客户端显式传了空值（校验失败）
type Patch struct {
	Email       *string
	FirstName   *string
	LastName    *string
	Birthday    *string
	Address     *Address
	PhoneNumber *string
}

// IsEmpty 是否没有任何字段需要修改
func (p Patch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil &&
		p.Birthday == nil && p.Address == nil && p.PhoneNumber == nil
}

// ApplyTo 将提议合并到目标用户，返回新的用户实体
// 1. 逐字段显式合并，只有提议中存在的字段才覆盖目标
// 2. ID永远保持目标的值
// 3. Address存在时整体替换
// birthday是已经由Validator解析好的生日，Birthday为nil时传nil
func (p Patch) ApplyTo(target User, birthday *time.Time) User {
	merged := target
	if target.Address != nil {
		addr := *target.Address
		merged.Address = &addr
	}

	if p.Email != nil {
		merged.Email = *p.Email
	}
	if p.FirstName != nil {
		merged.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		merged.LastName = *p.LastName
	}
	if birthday != nil {
		merged.Birthday = *birthday
	}
	if p.Address != nil {
		addr := *p.Address
		merged.Address = &addr
	}
	if p.PhoneNumber != nil {
		merged.PhoneNumber = *p.PhoneNumber
	}

	merged.ID = target.ID
	return merged
}
