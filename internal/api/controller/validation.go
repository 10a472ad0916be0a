package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// violatedFields 把 gin binding 错误转成违反规则的字段名列表
// 非校验类错误（JSON 解析失败等）给一个统一的占位
func violatedFields(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fields
	}
	return []string{"body"}
}
