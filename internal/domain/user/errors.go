package user

import (
	apperrors "github.com/xiebiao/userservice/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "User is not found")

	// ErrInvalidBirthdayFormat 生日格式错误
	ErrInvalidBirthdayFormat = apperrors.New(apperrors.ErrCodeInvalidFormat, "birthday format should be yyyy-MM-dd")

	// ErrBirthdayInFuture 生日不能晚于今天
	ErrBirthdayInFuture = apperrors.New(apperrors.ErrCodeDateInFuture, "birthday should be earlier than today")

	// ErrUserTooYoung 年龄不足
	ErrUserTooYoung = apperrors.New(apperrors.ErrCodeTooYoung, "user should be older")

	// ErrInvalidBirthdayRange 查询区间from必须早于to
	ErrInvalidBirthdayRange = apperrors.New(apperrors.ErrCodeInvalidRange, "birthday 'from' should be earlier than 'to'")

	// ErrInvalidPhone 电话格式错误
	ErrInvalidPhone = apperrors.New(apperrors.ErrCodeInvalidFormat,
		"The phone number should have format: +1234567890 or +123 456 7890. "+
			"It should have from 6 to 14 digits after the + symbol. Spaces are allowed after the digits.")

	// ErrInvalidPagination 分页参数必须非负
	ErrInvalidPagination = apperrors.New(apperrors.ErrCodeInvalidParams, "offset and limit should not be negative")
)

// blankFieldError 部分更新时字段为空字符串
func blankFieldError(field string) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeBlankField, "%s can't be blank", field)
}
