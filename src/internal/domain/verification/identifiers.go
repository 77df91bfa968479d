package verification

import (
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// VerificationMarker 是 VerificationID 的標記類型
type VerificationMarker struct{}

// VerificationID 驗證紀錄的唯一標識符
type VerificationID = shared.EntityID[VerificationMarker]

// NewVerificationID 生成新的 VerificationID（UUID v4）
func NewVerificationID() VerificationID {
	return shared.NewEntityID[VerificationMarker]()
}

// VerificationIDFromString 從字串解析 VerificationID
//
// 錯誤：ErrInvalidVerificationID（附 input 與 parse_error 上下文）
func VerificationIDFromString(s string) (VerificationID, error) {
	return shared.EntityIDFromString[VerificationMarker](s, ErrInvalidVerificationID)
}
