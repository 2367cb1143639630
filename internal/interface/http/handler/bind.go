package handler

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/userservice/pkg/errors"
)

var registerTagNameOnce sync.Once

// useJSONFieldNames 让校验错误中的字段名使用json tag（firstName而不是FirstName）
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// bindError 把请求绑定错误转换为AppError
//   - required → "<field> is required"
//   - email    → "email is invalid"
//   - 其他（JSON格式错误、类型不匹配） → 40901
func bindError(err error) *apperrors.AppError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.ErrBindError
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.Newf(apperrors.ErrCodeRequiredMissing, "%s is required", fe.Field())
	case "email":
		return apperrors.Newf(apperrors.ErrCodeInvalidFormat, "%s is invalid", fe.Field())
	default:
		return apperrors.Newf(apperrors.ErrCodeInvalidParams, "%s is invalid", fe.Field())
	}
}
