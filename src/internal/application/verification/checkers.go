package verification

import (
	"strings"

	"github.com/jackyeh168/idcheck/src/internal/domain/digits"
	"github.com/jackyeh168/idcheck/src/internal/domain/document"
	"github.com/jackyeh168/idcheck/src/internal/domain/ktp"
	"github.com/jackyeh168/idcheck/src/internal/domain/npwp"
	"github.com/jackyeh168/idcheck/src/internal/domain/phone"
	"github.com/jackyeh168/idcheck/src/internal/domain/plate"
	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
)

// ===========================
// 證件檢查表
// ===========================

// checkOutcome 單次檢查的結果
//
// attributes 會被保存，只能放非識別性資料；
// canonical / identity / links 只回傳給呼叫端
type checkOutcome struct {
	valid      bool
	masked     string
	canonical  string
	attributes map[string]string
	identity   *KTPIdentityDTO
	links      map[string]string
}

// documentChecker 檢查一個證件號碼（不回傳錯誤，無效時 valid 為 false）
type documentChecker func(input string) checkOutcome

var checkers = map[verification.DocumentType]documentChecker{
	verification.DocumentTypeKTP:            checkKTP,
	verification.DocumentTypeNPWP:           checkNPWP,
	verification.DocumentTypeVehiclePlate:   checkVehiclePlate,
	verification.DocumentTypePhone:          checkPhone,
	verification.DocumentTypePassport:       checkUpperAlnum(document.IsValidPassport),
	verification.DocumentTypeDrivingLicense: checkUpperAlnum(document.IsValidDrivingLicense),
	verification.DocumentTypeFamilyCard:     checkDigits(document.IsValidFamilyCard, maskTail),
	verification.DocumentTypePostalCode:     checkPostalCode,
	verification.DocumentTypeBankAccount:    checkDigits(document.IsValidBankAccount, document.MaskBankAccount),
	verification.DocumentTypeCreditCard:     checkDigits(document.IsValidCreditCard, document.MaskCreditCard),
}

// maskTail 去除空白後只保留最後 4 碼；4 碼以內全部遮罩
func maskTail(input string) string {
	clean := digits.Strip(input)
	if n := len([]rune(clean)); n <= 4 {
		return strings.Repeat("*", n)
	}
	return digits.MaskTail(clean, 4)
}

func checkKTP(input string) checkOutcome {
	identity, ok := ktp.Parse(input)
	if !ok {
		return checkOutcome{masked: maskTail(input)}
	}

	provinceName, _ := identity.ProvinceName()
	attrs := map[string]string{
		"province_code": identity.ProvinceCode,
		"gender":        string(identity.Gender),
	}
	if provinceName != "" {
		attrs["province_name"] = provinceName
	}

	return checkOutcome{
		valid:      true,
		masked:     ktp.Mask(input),
		canonical:  digits.Strip(input),
		attributes: attrs,
		identity: &KTPIdentityDTO{
			ProvinceCode: identity.ProvinceCode,
			ProvinceName: provinceName,
			CityCode:     identity.CityCode,
			DistrictCode: identity.DistrictCode,
			BirthDate:    identity.BirthDate,
			Gender:       string(identity.Gender),
			RandomDigits: identity.RandomDigits,
		},
	}
}

func checkNPWP(input string) checkOutcome {
	if !npwp.IsValid(input) {
		return checkOutcome{masked: maskTail(input)}
	}
	canonical, err := npwp.Format(input)
	if err != nil {
		return checkOutcome{masked: maskTail(input)}
	}
	return checkOutcome{
		valid:     true,
		masked:    npwp.Mask(input),
		canonical: canonical,
	}
}

func checkVehiclePlate(input string) checkOutcome {
	if !plate.IsValid(input) {
		return checkOutcome{masked: maskTail(input)}
	}
	canonical, err := plate.Format(input)
	if err != nil {
		return checkOutcome{masked: maskTail(input)}
	}

	region, _, _ := strings.Cut(canonical, " ")
	return checkOutcome{
		valid:      true,
		masked:     maskTail(strings.ToUpper(input)),
		canonical:  canonical,
		attributes: map[string]string{"region_code": region},
	}
}

func checkPhone(input string) checkOutcome {
	if !phone.IsValid(input) {
		return checkOutcome{masked: maskTail(input)}
	}
	canonical := phone.Format(input)
	return checkOutcome{
		valid:     true,
		masked:    maskTail(canonical),
		canonical: canonical,
		links: map[string]string{
			"whatsapp": phone.WhatsAppLink(input, ""),
			"telegram": phone.TelegramLink(input, ""),
		},
	}
}

func checkPostalCode(input string) checkOutcome {
	if !document.IsValidPostalCode(input) {
		return checkOutcome{masked: maskTail(input)}
	}
	return checkOutcome{
		valid:     true,
		masked:    maskTail(input),
		canonical: document.FormatPostalCode(input),
	}
}

// checkUpperAlnum 字母數字混合的證件（護照、SIM），標準形式為去空白大寫
func checkUpperAlnum(isValid func(string) bool) documentChecker {
	return func(input string) checkOutcome {
		if !isValid(input) {
			return checkOutcome{masked: maskTail(input)}
		}
		return checkOutcome{
			valid:     true,
			masked:    maskTail(strings.ToUpper(input)),
			canonical: strings.ToUpper(digits.Strip(input)),
		}
	}
}

// checkDigits 純數字證件，標準形式為去空白
func checkDigits(isValid func(string) bool, mask func(string) string) documentChecker {
	return func(input string) checkOutcome {
		if !isValid(input) {
			return checkOutcome{masked: maskTail(input)}
		}
		return checkOutcome{
			valid:     true,
			masked:    mask(input),
			canonical: digits.Strip(input),
		}
	}
}
