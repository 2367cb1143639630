package user

import (
	"regexp"
	"time"
)

var (
	// datePattern 生日格式：4位年-2位月-2位日
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// phonePattern +号后共6-14位数字，数字之间可用单个空格分隔
	phonePattern = regexp.MustCompile(`^\+(?:[0-9] ?){5,13}[0-9]$`)
)

// Validator 用户字段校验规则
// 无状态：每次调用独立求值，按固定顺序执行，第一个失败的规则决定返回的错误
//   - 写入：格式 → 不晚于今天 → 最小年龄
//   - 区间：from格式 → to格式 → from早于to
type Validator struct {
	// MinAge 最小年龄（周岁），来自配置user.min_age
	MinAge int
	// Now 当前时间，测试时可替换
	Now func() time.Time
}

// NewValidator 创建校验器
func NewValidator(minAge int) *Validator {
	return &Validator{
		MinAge: minAge,
		Now:    time.Now,
	}
}

// ValidateBirthday 校验写入时的生日，返回解析后的日期
func (v *Validator) ValidateBirthday(birthday string) (time.Time, error) {
	date, err := parseBirthday(birthday)
	if err != nil {
		return time.Time{}, err
	}

	today := v.today()
	if !date.Before(today) {
		return time.Time{}, ErrBirthdayInFuture
	}

	if age(date, today) < v.MinAge {
		return time.Time{}, ErrUserTooYoung
	}

	return date, nil
}

// ValidateBirthdayRange 校验列表查询的生日区间
// from、to为nil表示未传；两者都为nil时返回nil区间
func (v *Validator) ValidateBirthdayRange(from, to *string) (*BirthdayRange, error) {
	var r BirthdayRange

	if from != nil {
		date, err := parseBirthday(*from)
		if err != nil {
			return nil, err
		}
		r.From = &date
	}

	if to != nil {
		date, err := parseBirthday(*to)
		if err != nil {
			return nil, err
		}
		r.To = &date
	}

	if r.From == nil && r.To == nil {
		return nil, nil
	}

	// 相等或倒置都不合法
	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return nil, ErrInvalidBirthdayRange
	}

	return &r, nil
}

// ValidatePhone 校验电话号码，空串表示未填写，总是合法
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidatePagination 分页参数必须非负
func (v *Validator) ValidatePagination(offset, limit int) error {
	if offset < 0 || limit < 0 {
		return ErrInvalidPagination
	}
	return nil
}

// ValidateProfile 校验创建/替换的完整资料，返回解析后的生日
// 必填与邮箱格式属于请求绑定层，这里只校验电话和生日
func (v *Validator) ValidateProfile(p Profile) (time.Time, error) {
	if err := v.ValidatePhone(p.PhoneNumber); err != nil {
		return time.Time{}, err
	}
	return v.ValidateBirthday(p.Birthday)
}

// ValidatePatch 校验部分更新提议
// 1. 文本字段显式传空串视为错误（不是"不修改"）
// 2. 电话存在时校验格式
// 3. 生日存在时走完整的生日规则，返回解析后的生日（未传时为nil）
func (v *Validator) ValidatePatch(p Patch) (*time.Time, error) {
	blankChecks := []struct {
		field string
		value *string
	}{
		{"email", p.Email},
		{"firstName", p.FirstName},
		{"lastName", p.LastName},
		{"birthday", p.Birthday},
	}
	for _, c := range blankChecks {
		if c.value != nil && *c.value == "" {
			return nil, blankFieldError(c.field)
		}
	}

	if p.PhoneNumber != nil {
		if err := v.ValidatePhone(*p.PhoneNumber); err != nil {
			return nil, err
		}
	}

	if p.Birthday == nil {
		return nil, nil
	}
	date, err := v.ValidateBirthday(*p.Birthday)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// today 当前日期（UTC零点），与存储的生日可直接比较
func (v *Validator) today() time.Time {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	y, m, d := now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseBirthday 先做格式校验，再解析日期（如2020-13-45能通过正则但解析失败）
func parseBirthday(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrInvalidBirthdayFormat
	}
	date, err := ParseDate(s)
	if err != nil {
		return time.Time{}, ErrInvalidBirthdayFormat
	}
	return date, nil
}

// age 计算周岁：今年还没到生日的要减一
func age(birthday, today time.Time) int {
	years := today.Year() - birthday.Year()
	if birthday.Month() > today.Month() ||
		(birthday.Month() == today.Month() && birthday.Day() > today.Day()) {
		years--
	}
	return years
}

// ValidateListQuery 校验列表查询参数并组装ListFilter
// 顺序：区间规则 → 分页规则
func (v *Validator) ValidateListQuery(from, to *string, offset, limit int) (ListFilter, error) {
	r, err := v.ValidateBirthdayRange(from, to)
	if err != nil {
		return ListFilter{}, err
	}
	if err := v.ValidatePagination(offset, limit); err != nil {
		return ListFilter{}, err
	}
	return ListFilter{
		Range:      r,
		Pagination: &Pagination{Offset: offset, Limit: limit},
	}, nil
}
