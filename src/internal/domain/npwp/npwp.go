package npwp

import (
	"regexp"
	"strings"

	"github.com/jackyeh168/idcheck/src/internal/domain/digits"
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// ===========================
// NPWP 稅籍編號
// ===========================

// Length NPWP 數字位數
const Length = 15

// ErrCodeInvalidNPWPLength NPWP 位數錯誤
const ErrCodeInvalidNPWPLength shared.ErrorCode = "NPWP_INVALID_LENGTH"

// ErrInvalidNPWPLength 去除標點後不是 15 位數字
var ErrInvalidNPWPLength = shared.NewDomainError(
	ErrCodeInvalidNPWPLength,
	"NPWP must be exactly 15 digits",
)

// groupWidths 標準格式 PP.RRR.SSS.K-LLL.MMM 的分組寬度
var groupWidths = []int{2, 3, 3, 1, 3, 3}

// groupSeparators 每組之後的分隔符（最後一組無）
var groupSeparators = []string{".", ".", ".", "-", ".", ""}

var (
	digitsPattern    = regexp.MustCompile(`^\d{15}$`)
	canonicalPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}\.\d{1}-\d{3}\.\d{3}$`)
	punctuation      = strings.NewReplacer(".", "", "-", "")
)

// clean 移除 '.' 與 '-'
func clean(input string) string {
	return punctuation.Replace(input)
}

// Format 轉換為標準格式 XX.XXX.XXX.X-XXX.XXX
//
// 錯誤：
// - 去除 '.' 與 '-' 後不是 15 位數字 → ErrInvalidNPWPLength
func Format(input string) (string, error) {
	c := clean(input)
	if !digitsPattern.MatchString(c) {
		return "", ErrInvalidNPWPLength.WithContext(
			"npwp", input,
			"digits", len(c),
		)
	}

	var b strings.Builder
	b.Grow(len(c) + len(groupWidths) - 1)
	offset := 0
	for i, width := range groupWidths {
		b.WriteString(c[offset : offset+width])
		b.WriteString(groupSeparators[i])
		offset += width
	}
	return b.String(), nil
}

// IsValid 驗證 NPWP
//
// 先檢查 15 位數字，再將格式化結果比對標準格式。
// 第二步在第一步成立時必然成立，保留是為了讓「格式化後符合標準格式」成為驗證定義的一部分。
func IsValid(input string) bool {
	if !digitsPattern.MatchString(clean(input)) {
		return false
	}
	formatted, err := Format(input)
	if err != nil {
		return false
	}
	return canonicalPattern.MatchString(formatted)
}

// Mask 僅顯示最後 4 碼；去除標點後不是 15 碼時原樣回傳
func Mask(input string) string {
	c := clean(input)
	if len([]rune(c)) != Length {
		return input
	}
	return digits.MaskTail(c, 4)
}
