package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用的规则集（与DTO的消息表同构）
var testMessages = map[string]string{
	"name.required": "Name is required",
	"email.email":   "Email must be valid",
	"age.gte":       "Age must be a positive integer",
	"age.type":      "Age must be a positive integer",
}

type testPayload struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Age   int    `validate:"gte=0"`
}

// TestTranslateValidationErrors 校验错误应按字段声明顺序翻译
func TestTranslateValidationErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(testPayload{Name: "", Email: "not-an-email", Age: -1})
	require.Error(t, err)

	got := Translate(err, testMessages)
	require.Len(t, got, 3)

	assert.Equal(t, FieldError{Field: "name", Message: "Name is required"}, got[0])
	assert.Equal(t, FieldError{Field: "email", Message: "Email must be valid"}, got[1])
	assert.Equal(t, FieldError{Field: "age", Message: "Age must be a positive integer"}, got[2])
}

// TestTranslateUnknownRule 消息表未命中时退化为通用提示
func TestTranslateUnknownRule(t *testing.T) {
	v := validator.New()

	err := v.Struct(testPayload{Name: ""})
	require.Error(t, err)

	got := Translate(err, map[string]string{})
	require.Len(t, got, 1)
	assert.Equal(t, "name", got[0].Field)
	assert.Equal(t, "name is invalid", got[0].Message)
}

// TestTranslateTypeError JSON类型不匹配应按"字段.type"命中消息表
func TestTranslateTypeError(t *testing.T) {
	var dst struct {
		Age int `json:"age"`
	}
	err := json.Unmarshal([]byte(`{"age":"abc"}`), &dst)
	require.Error(t, err)

	got := Translate(err, testMessages)
	require.Len(t, got, 1)
	assert.Equal(t, FieldError{Field: "age", Message: "Age must be a positive integer"}, got[0])
}

// TestTranslateMalformedBody 其他错误统一归为body
func TestTranslateMalformedBody(t *testing.T) {
	got := Translate(errors.New("unexpected EOF"), testMessages)
	require.Len(t, got, 1)
	assert.Equal(t, FieldError{Field: "body", Message: "Invalid request payload"}, got[0])
}
