package user

import (
	"time"
)

// DateLayout 生日的日期格式（只有日期，没有时间部分）
const DateLayout = "2006-01-02"

// User 用户实体（聚合根）
// 1. ID由仓储分配，创建时客户端不能指定，分配后不可变
// 2. Birthday只有日期部分，统一存储为UTC零点
// 3. Address、PhoneNumber为可选字段，PhoneNumber为空串表示未填写
type User struct {
	ID          uint
	Email       string
	FirstName   string
	LastName    string
	Birthday    time.Time
	Address     *Address
	PhoneNumber string
}

// Address 用户地址（值对象）
type Address struct {
	Country     string
	City        string
	Street      string
	HouseNumber int
	ZipCode     int
}

// Clone 深拷贝用户，仓储用它保证快照与内部数据互不影响
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Address != nil {
		addr := *u.Address
		c.Address = &addr
	}
	return &c
}

// Profile 创建/整体替换用户时的完整资料
// Birthday保持请求中的原始字符串，由Validator负责解析
type Profile struct {
	Email       string
	FirstName   string
	LastName    string
	Birthday    string
	Address     *Address
	PhoneNumber string
}

// NewUser 由已校验的资料和解析后的生日创建用户实体（ID为0，待仓储分配）
func NewUser(p Profile, birthday time.Time) *User {
	u := &User{
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Birthday:    birthday,
		PhoneNumber: p.PhoneNumber,
	}
	if p.Address != nil {
		addr := *p.Address
		u.Address = &addr
	}
	return u
}

// ParseDate 按DateLayout解析日期，结果为UTC零点
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
