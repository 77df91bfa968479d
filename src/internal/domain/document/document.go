// Package document 其他印尼民事證件的格式驗證與遮罩：
// 郵遞區號、銀行帳號、信用卡、護照、駕照（SIM）、家庭卡（KK）與出生/結婚/死亡證明，
// 以及地址與姓名的標準化。
package document

import (
	"regexp"
	"strings"

	"github.com/jackyeh168/idcheck/src/internal/domain/digits"
)

// maskVisible 遮罩時保留的尾碼數
const maskVisible = 4

var (
	postalCodePattern  = regexp.MustCompile(`^\d{5}$`)
	bankAccountPattern = regexp.MustCompile(`^\d{8,17}$`)
	creditCardPattern  = regexp.MustCompile(`^\d{13,19}$`)
	familyCardPattern  = regexp.MustCompile(`^\d{16}$`)

	// A1234567 / AB1234567
	passportPattern = regexp.MustCompile(`^[A-Z]{1,2}\d{7}$`)

	// A123456789012345
	drivingLicensePattern = regexp.MustCompile(`^[A-Z]\d{15}$`)

	// 出生 / 結婚 / 死亡證明
	civilCertificatePattern = regexp.MustCompile(`^[A-Z0-9]{10,20}$`)
)

// ===========================
// 郵遞區號（Kode Pos）
// ===========================

// IsValidPostalCode 5 位數字
func IsValidPostalCode(input string) bool {
	return postalCodePattern.MatchString(digits.Strip(input))
}

// FormatPostalCode 去除空白；長度不是 5 時原樣回傳
func FormatPostalCode(input string) string {
	clean := digits.Strip(input)
	if len(clean) != 5 {
		return input
	}
	return clean
}

// ===========================
// 銀行帳號 / 信用卡
// ===========================

// IsValidBankAccount 8 到 17 位數字
func IsValidBankAccount(input string) bool {
	return bankAccountPattern.MatchString(digits.Strip(input))
}

// MaskBankAccount 只顯示最後 4 碼；少於 8 個字元時原樣回傳
func MaskBankAccount(input string) string {
	return maskIfAtLeast(input, 8)
}

// IsValidCreditCard 13 到 19 位數字且通過 Luhn 檢查
func IsValidCreditCard(input string) bool {
	clean := digits.Strip(input)
	return creditCardPattern.MatchString(clean) && digits.IsValidLuhn(clean)
}

// MaskCreditCard 只顯示最後 4 碼；少於 13 個字元時原樣回傳
func MaskCreditCard(input string) string {
	return maskIfAtLeast(input, 13)
}

func maskIfAtLeast(input string, minLength int) string {
	clean := digits.Strip(input)
	if len([]rune(clean)) < minLength {
		return input
	}
	return digits.MaskTail(clean, maskVisible)
}

// ===========================
// 護照 / SIM / KK / 證明書
// ===========================

// IsValidPassport 1-2 個字母加 7 位數字，不分大小寫
func IsValidPassport(input string) bool {
	return passportPattern.MatchString(strings.ToUpper(digits.Strip(input)))
}

// IsValidDrivingLicense 1 個字母加 15 位數字，不分大小寫
func IsValidDrivingLicense(input string) bool {
	return drivingLicensePattern.MatchString(strings.ToUpper(digits.Strip(input)))
}

// IsValidFamilyCard 16 位數字
func IsValidFamilyCard(input string) bool {
	return familyCardPattern.MatchString(digits.Strip(input))
}

// IsValidCivilCertificate 出生、結婚、死亡證明號碼：10 到 20 個大寫字母或數字
//
// 不轉換大小寫，小寫輸入視為無效
func IsValidCivilCertificate(input string) bool {
	return civilCertificatePattern.MatchString(digits.Strip(input))
}
