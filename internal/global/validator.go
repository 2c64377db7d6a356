package global

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"touch_crm/internal/common"
)

// Enum được implement bởi các kiểu giá trị đóng (ví dụ TouchChannel, TouchType)
type Enum interface {
	IsValid() bool
}

// FieldError mô tả một field không qua validate, trả về trong Details của lỗi 422
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validateOnce sync.Once

// InitValidator khởi tạo validator và đăng ký các custom validator
func InitValidator() {
	validateOnce.Do(func() {
		Validate = NewValidator()
	})
}

// NewValidator tạo validator dùng tên field theo tag json (cust_name, touch_chann...)
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("enum", validateEnum)
	_ = v.RegisterValidation("not_blank", validateNotBlank)
	return v
}

// validateEnum kiểm tra giá trị thuộc tập đóng; dùng với omitempty để cho phép rỗng
func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	if e, ok := field.Interface().(Enum); ok {
		return e.IsValid()
	}
	return false
}

// validateNotBlank từ chối chuỗi chỉ có khoảng trắng
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateStruct validate v và chuyển lỗi validator thành common.Error 422
func ValidateStruct(v interface{}) error {
	InitValidator()
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return common.NewValidationError(err.Error())
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return common.NewValidationError(fields)
}
