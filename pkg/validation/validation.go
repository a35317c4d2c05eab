// Package validation 将绑定/校验错误翻译为字段级错误列表
//
// 设计说明：
// 1. DTO上的binding tag声明了每个操作的校验规则集（见interface/http/dto）
// 2. 校验失败时validator返回ValidationErrors，这里翻译成有序的
//    {field, message} 列表，按DTO字段声明顺序输出
// 3. 提示文案由各DTO的消息表提供（key格式："字段名.规则名"，均为小写字段名），
//    未命中时退化为通用提示
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Translate 将绑定错误翻译为字段错误列表
// 支持两类输入：
// - validator.ValidationErrors：binding tag校验失败
// - json.UnmarshalTypeError：JSON类型不匹配（如age传了字符串），
//   消息表中以"字段名.type"命中
// 其余错误（如JSON语法错误）统一归为body字段的通用错误。
func Translate(err error, messages map[string]string) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			msg, ok := messages[field+"."+fe.Tag()]
			if !ok {
				msg = fmt.Sprintf("%s is invalid", field)
			}
			out = append(out, FieldError{Field: field, Message: msg})
		}
		return out
	}

	var jerr *json.UnmarshalTypeError
	if errors.As(err, &jerr) && jerr.Field != "" {
		field := strings.ToLower(jerr.Field)
		msg, ok := messages[field+".type"]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", field)
		}
		return []FieldError{{Field: field, Message: msg}}
	}

	return []FieldError{{Field: "body", Message: "Invalid request payload"}}
}
