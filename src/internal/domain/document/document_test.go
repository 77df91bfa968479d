package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatorCase struct {
	input string
	want  bool
}

func runValidatorCases(t *testing.T, validate func(string) bool, cases []validatorCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, validate(tc.input))
		})
	}
}

func TestIsValidPostalCode(t *testing.T) {
	runValidatorCases(t, IsValidPostalCode, []validatorCase{
		{"12345", true},
		{"123 45", true},
		{"1234", false},
		{"123456", false},
		{"1234a", false},
		{"", false},
	})
}

func TestFormatPostalCode(t *testing.T) {
	assert.Equal(t, "40115", FormatPostalCode(" 401 15 "))
	assert.Equal(t, "4011", FormatPostalCode("4011"))
	assert.Equal(t, "ab cd", FormatPostalCode("ab cd"), "長度不符時原樣回傳")
	assert.Equal(t, "abcde", FormatPostalCode("ab cde"), "只檢查長度，不檢查是否為數字")
}

func TestIsValidBankAccount(t *testing.T) {
	runValidatorCases(t, IsValidBankAccount, []validatorCase{
		{"12345678", true},
		{"1234 5678 9012", true},
		{"12345678901234567", true},
		{"1234567", false},
		{"123456789012345678", false},
		{"1234-5678", false},
	})
}

func TestMaskBankAccount(t *testing.T) {
	assert.Equal(t, "******7890", MaskBankAccount("1234567890"))
	assert.Equal(t, "******7890", MaskBankAccount("12345 67890"))
	assert.Equal(t, "1234567", MaskBankAccount("1234567"))
}

func TestIsValidCreditCard(t *testing.T) {
	runValidatorCases(t, IsValidCreditCard, []validatorCase{
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{"5500000000000004", true},
		{"4222222222222", true},
		{"4111111111111112", false}, // Luhn 失敗
		{"411111111111", false},     // 12 碼
		{"41111111111111111111", false},
		{"", false},
	})
}

func TestMaskCreditCard(t *testing.T) {
	assert.Equal(t, "************1111", MaskCreditCard("4111 1111 1111 1111"))
	assert.Equal(t, "411111111111", MaskCreditCard("411111111111"))
}

func TestIsValidPassport(t *testing.T) {
	runValidatorCases(t, IsValidPassport, []validatorCase{
		{"A1234567", true},
		{"AB1234567", true},
		{"ab 1234567", true},
		{"ABC1234567", false},
		{"A123456", false},
		{"12345678", false},
	})
}

func TestIsValidDrivingLicense(t *testing.T) {
	runValidatorCases(t, IsValidDrivingLicense, []validatorCase{
		{"A123456789012345", true},
		{"b123456789012345", true},
		{"AB23456789012345", false},
		{"A12345678901234", false},
		{"1123456789012345", false},
	})
}

func TestIsValidFamilyCard(t *testing.T) {
	runValidatorCases(t, IsValidFamilyCard, []validatorCase{
		{"3174050607890001", true},
		{"3174 0506 0789 0001", true},
		{"317405060789000", false},
		{"317405060789000A", false},
	})
}

func TestIsValidCivilCertificate(t *testing.T) {
	runValidatorCases(t, IsValidCivilCertificate, []validatorCase{
		{"AL5010012345", true},
		{"1234567890", true},
		{"AL50 1001 2345", true},
		{"al5010012345", false}, // 不轉大寫
		{"AL501", false},
		{"AL5010012345678901234", false},
		{"AL-5010012345", false},
	})
}
