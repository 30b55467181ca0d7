package dto

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate 执行结构体校验，失败时返回 400 INVALID_ARGUMENT，消息列出违规字段。
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.BadRequest(services.ReasonInvalidArgument, "invalid request")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", lowerFirst(fe.Field()), fe.Tag()))
	}
	return errors.BadRequest(services.ReasonInvalidArgument, "invalid fields: "+strings.Join(fields, ", "))
}

// InvalidBody 表示请求体或查询参数无法解码。
func InvalidBody(err error) error {
	return errors.BadRequest(services.ReasonInvalidArgument, "malformed request").WithCause(err)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
