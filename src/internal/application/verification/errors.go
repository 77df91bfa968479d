package verification

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// ErrCodeInvalidCommand 指令或查詢參數驗證失敗
const ErrCodeInvalidCommand shared.ErrorCode = "INVALID_COMMAND"

// ErrInvalidCommand 指令或查詢參數驗證失敗
var ErrInvalidCommand = shared.NewDomainError(ErrCodeInvalidCommand, "invalid command")

// notBlank 去除前後空白後不可為空
var notBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// wrapValidationError 將 validation.Errors 包成 ErrInvalidCommand
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return ErrInvalidCommand.WithContext("details", err.Error())
}
