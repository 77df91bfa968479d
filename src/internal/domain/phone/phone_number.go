package phone

import (
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// ===========================
// PhoneNumber Value Object
// ===========================

// ErrCodeInvalidPhoneNumberFormat 電話號碼格式無效
const ErrCodeInvalidPhoneNumberFormat shared.ErrorCode = "INVALID_PHONE_NUMBER_FORMAT"

// ErrInvalidPhoneNumberFormat 電話號碼格式無效
//
// 觸發條件：
// - 不符合手機（08xx）、市話（02x / 04x）任一格式
// - 國碼不是 +62 / 62 / 0
var ErrInvalidPhoneNumberFormat = shared.NewDomainError(
	ErrCodeInvalidPhoneNumberFormat,
	"invalid Indonesian phone number",
)

// PhoneNumber 印尼電話號碼值對象
//
// 業務規則：
// 1. 必須通過 IsValid
// 2. 內部只保存標準形式（+62 開頭）
//
// 使用範例：
//   phoneNumber, err := NewPhoneNumber("0812 3456 789")
//   if err != nil {
//       return err // ErrInvalidPhoneNumberFormat
//   }
//   fmt.Println(phoneNumber.String()) // "+628123456789"
type PhoneNumber struct {
	value string
}

// NewPhoneNumber 創建電話號碼值對象（Checked Constructor）
//
// 錯誤範例：
// - "0712345678"（非 08/02/04 開頭）→ ErrInvalidPhoneNumberFormat
// - "0812-3456-789"（含連字號）→ ErrInvalidPhoneNumberFormat
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if !IsValid(value) {
		return PhoneNumber{}, ErrInvalidPhoneNumberFormat.WithContext(
			"phone", value,
			"reason", "must be an Indonesian mobile or landline number",
		)
	}
	return PhoneNumber{value: Format(value)}, nil
}

// String 標準形式，例如 "+628123456789"
func (p PhoneNumber) String() string {
	return p.value
}

// Equals 以標準形式比較，"0812..." 與 "+62812..." 視為相同
func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p.value == other.value
}

// IsZero 是否為零值
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}
