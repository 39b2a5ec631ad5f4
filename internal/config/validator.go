package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator 에러 메시지에 구조체 필드명 대신 JSON 키 이름을 사용하는 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func validateStruct(s interface{}, contextName string) error {
	return checkStruct(validate, s, contextName)
}

// checkStruct 구조체의 유효성을 검사하고, 사용자 친화적인 에러 메시지를 반환합니다.
func checkStruct(v *validator.Validate, s interface{}, contextName string) error {
	if err := v.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			// 첫 번째 에러만 상세히 보고
			firstErr := validationErrors[0]

			if firstErr.Tag() == "oneof" {
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 허용되지 않습니다: '%v' (허용: %s)", contextName, firstErr.Field(), firstErr.Value(), firstErr.Param()))
			}

			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}
	return nil
}
