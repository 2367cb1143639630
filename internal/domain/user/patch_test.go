package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func baseUser(t *testing.T) User {
	return User{
		ID:        3,
		Email:     "ivan@example.com",
		FirstName: "Ivan",
		LastName:  "Petrenko",
		Birthday:  mustDate(t, "1990-10-21"),
		Address: &Address{
			Country:     "Ukraine",
			City:        "Kyiv",
			Street:      "Khreshchatyk",
			HouseNumber: 1,
			ZipCode:     1001,
		},
		PhoneNumber: "+380441234567",
	}
}

func TestPatch_ApplyTo(t *testing.T) {
	t.Run("只覆盖提议中存在的字段", func(t *testing.T) {
		target := baseUser(t)
		p := Patch{Email: strPtr("new@example.com")}

		merged := p.ApplyTo(target, nil)

		want := baseUser(t)
		want.Email = "new@example.com"
		assert.Equal(t, want, merged)
	})

	t.Run("所有字段都覆盖", func(t *testing.T) {
		target := baseUser(t)
		birthday := mustDate(t, "1985-01-02")
		p := Patch{
			Email:       strPtr("o@example.com"),
			FirstName:   strPtr("Olena"),
			LastName:    strPtr("Shevchenko"),
			Birthday:    strPtr("1985-01-02"),
			Address:     &Address{Country: "Poland", City: "Warsaw"},
			PhoneNumber: strPtr("+48 22 123 456"),
		}

		merged := p.ApplyTo(target, &birthday)

		assert.Equal(t, User{
			ID:          3,
			Email:       "o@example.com",
			FirstName:   "Olena",
			LastName:    "Shevchenko",
			Birthday:    birthday,
			Address:     &Address{Country: "Poland", City: "Warsaw"},
			PhoneNumber: "+48 22 123 456",
		}, merged)
	})

	t.Run("地址整体替换而不是逐字段合并", func(t *testing.T) {
		target := baseUser(t)
		p := Patch{Address: &Address{City: "Lviv"}}

		merged := p.ApplyTo(target, nil)

		assert.Equal(t, &Address{City: "Lviv"}, merged.Address)
	})

	t.Run("空提议返回等价用户", func(t *testing.T) {
		target := baseUser(t)
		p := Patch{}

		assert.True(t, p.IsEmpty())
		assert.Equal(t, target, p.ApplyTo(target, nil))
	})

	t.Run("结果与目标不共享地址", func(t *testing.T) {
		target := baseUser(t)
		merged := Patch{FirstName: strPtr("Petro")}.ApplyTo(target, nil)

		merged.Address.City = "Odesa"
		assert.Equal(t, "Kyiv", target.Address.City)
	})

	t.Run("结果与提议不共享地址", func(t *testing.T) {
		addr := &Address{City: "Lviv"}
		merged := Patch{Address: addr}.ApplyTo(baseUser(t), nil)

		addr.City = "Dnipro"
		assert.Equal(t, "Lviv", merged.Address.City)
	})
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{LastName: strPtr("")}.IsEmpty())
	assert.False(t, Patch{Address: &Address{}}.IsEmpty())
}
