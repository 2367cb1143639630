package dto

import (
	appuser "github.com/xiebiao/userservice/internal/application/user"
)

// UserPayload HTTP层创建/整体替换请求
// 客户端传入的id字段会被忽略
type UserPayload struct {
	Email       string          `json:"email" binding:"required,email" example:"ivan@example.com"`
	FirstName   string          `json:"firstName" binding:"required" example:"Ivan"`
	LastName    string          `json:"lastName" binding:"required" example:"Petrenko"`
	Birthday    string          `json:"birthday" binding:"required" example:"1990-10-21"`
	Address     *AddressPayload `json:"address"`
	PhoneNumber string          `json:"phoneNumber" example:"+380441234567"`
}

// PatchUserPayload HTTP层部分更新请求
// 字段缺省表示不修改；显式传空串由领域校验拒绝
type PatchUserPayload struct {
	Email       *string         `json:"email" binding:"omitempty,email"`
	FirstName   *string         `json:"firstName"`
	LastName    *string         `json:"lastName"`
	Birthday    *string         `json:"birthday"`
	Address     *AddressPayload `json:"address"`
	PhoneNumber *string         `json:"phoneNumber"`
}

// AddressPayload 地址
type AddressPayload struct {
	Country     string `json:"country" example:"Ukraine"`
	City        string `json:"city" example:"Kyiv"`
	Street      string `json:"street" example:"Khreshchatyk"`
	HouseNumber int    `json:"houseNumber" example:"1"`
	ZipCode     int    `json:"zipCode" example:"1001"`
}

// ListUsersQuery 列表查询参数
type ListUsersQuery struct {
	From   string `form:"from"`   // 生日下限（不含），yyyy-MM-dd
	To     string `form:"to"`     // 生日上限（不含），yyyy-MM-dd
	Offset int    `form:"offset"` // 跳过条数
	Limit  int    `form:"limit"`  // 取多少条，0表示不限
}

// UserResponse 用户响应
type UserResponse = appuser.UserDTO

// CreateUserResponse 创建响应
type CreateUserResponse = appuser.CreateUserResponse

// ToRequest HTTP DTO → 应用层请求
func (p UserPayload) ToRequest() appuser.UserRequest {
	return appuser.UserRequest{
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Birthday:    p.Birthday,
		Address:     p.Address.toDTO(),
		PhoneNumber: p.PhoneNumber,
	}
}

// ToRequest HTTP DTO → 应用层请求
func (p PatchUserPayload) ToRequest() appuser.PatchUserRequest {
	return appuser.PatchUserRequest{
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Birthday:    p.Birthday,
		Address:     p.Address.toDTO(),
		PhoneNumber: p.PhoneNumber,
	}
}

// ToRequest 空串参数视为未传
func (q ListUsersQuery) ToRequest() appuser.ListUsersRequest {
	req := appuser.ListUsersRequest{
		Offset: q.Offset,
		Limit:  q.Limit,
	}
	if q.From != "" {
		from := q.From
		req.From = &from
	}
	if q.To != "" {
		to := q.To
		req.To = &to
	}
	return req
}

func (a *AddressPayload) toDTO() *appuser.AddressDTO {
	if a == nil {
		return nil
	}
	return &appuser.AddressDTO{
		Country:     a.Country,
		City:        a.City,
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		ZipCode:     a.ZipCode,
	}
}
