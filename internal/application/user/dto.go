package user

import (
	"github.com/xiebiao/userservice/internal/domain/user"
)

// =========================================
// 应用层DTO（数据传输对象）
// =========================================
// JSON字段名与对外API保持一致（camelCase）

// UserDTO 用户信息
type UserDTO struct {
	ID          uint        `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Birthday    string      `json:"birthday"` // yyyy-MM-dd
	Address     *AddressDTO `json:"address,omitempty"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
}

// AddressDTO 地址
type AddressDTO struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
	ZipCode     int    `json:"zipCode"`
}

// UserRequest 创建/整体替换用户的请求
type UserRequest struct {
	Email       string
	FirstName   string
	LastName    string
	Birthday    string
	Address     *AddressDTO
	PhoneNumber string
}

// PatchUserRequest 部分更新请求，nil字段表示不修改
type PatchUserRequest struct {
	Email       *string
	FirstName   *string
	LastName    *string
	Birthday    *string
	Address     *AddressDTO
	PhoneNumber *string
}

func (r UserRequest) toProfile() user.Profile {
	return user.Profile{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Birthday:    r.Birthday,
		Address:     r.Address.toDomain(),
		PhoneNumber: r.PhoneNumber,
	}
}

func (r PatchUserRequest) toPatch() user.Patch {
	return user.Patch{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Birthday:    r.Birthday,
		Address:     r.Address.toDomain(),
		PhoneNumber: r.PhoneNumber,
	}
}

func (a *AddressDTO) toDomain() *user.Address {
	if a == nil {
		return nil
	}
	return &user.Address{
		Country:     a.Country,
		City:        a.City,
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		ZipCode:     a.ZipCode,
	}
}

// toUserDTO 领域实体 → DTO
func toUserDTO(u *user.User) UserDTO {
	dto := UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Birthday:    u.Birthday.Format(user.DateLayout),
		PhoneNumber: u.PhoneNumber,
	}
	if u.Address != nil {
		dto.Address = &AddressDTO{
			Country:     u.Address.Country,
			City:        u.Address.City,
			Street:      u.Address.Street,
			HouseNumber: u.Address.HouseNumber,
			ZipCode:     u.Address.ZipCode,
		}
	}
	return dto
}
