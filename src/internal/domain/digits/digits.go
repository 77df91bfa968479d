// Package digits 提供各證件編碼共用的低階數字工具：
// 空白清除、ASCII 數字判斷、固定寬度欄位切片、Luhn 檢查碼與遮罩。
package digits

import (
	"strconv"
	"strings"
	"unicode"
)

// Strip 移除所有空白字元（含 Unicode 空白）
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsASCIIDigits 是否全部為 0-9（空字串回傳 false）
func IsASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ===========================
// Field 固定寬度欄位
// ===========================

// Field 定位式編碼中的一個欄位（以 byte offset 表示）
//
// 前提：呼叫 Slice / Int 之前，輸入長度必須已驗證過
type Field struct {
	Name   string
	Offset int
	Width  int
}

// Slice 取出欄位原始字串
func (f Field) Slice(s string) string {
	return s[f.Offset : f.Offset+f.Width]
}

// Int 將欄位解析為整數；非數字時回傳 (0, false)
func (f Field) Int(s string) (int, bool) {
	raw := f.Slice(s)
	if !IsASCIIDigits(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// End 欄位結束位置（不含）
func (f Field) End() int {
	return f.Offset + f.Width
}

// ===========================
// Luhn
// ===========================

// IsValidLuhn 以 Luhn 演算法驗證數字字串
//
// 由最右邊開始，每隔一位（倒數第二位起）乘 2，超過 9 則減 9，
// 總和可被 10 整除即為有效。本函數不限制長度，但空字串或含非數字字元一律無效。
func IsValidLuhn(s string) bool {
	if !IsASCIIDigits(s) {
		return false
	}

	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ===========================
// 遮罩
// ===========================

// MaskTail 保留最後 visible 個字元，其餘以 '*' 取代
//
// 以 rune 計算長度；visible >= 長度時原樣回傳
func MaskTail(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}
	if visible >= len(runes) {
		return s
	}
	masked := len(runes) - visible
	return strings.Repeat("*", masked) + string(runes[masked:])
}
