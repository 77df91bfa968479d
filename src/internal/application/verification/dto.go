package verification

import (
	"time"

	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
)

// VerificationDTO 驗證紀錄（Output DTO）
type VerificationDTO struct {
	ID           string
	DocumentType string
	MaskedNumber string
	Valid        bool
	Attributes   map[string]string
	CheckedAt    time.Time
}

// KTPIdentityDTO 解碼後的 KTP 欄位（只回傳，不保存）
type KTPIdentityDTO struct {
	ProvinceCode string
	ProvinceName string
	CityCode     string
	DistrictCode string
	BirthDate    string // DD/MM/YY
	Gender       string
	RandomDigits string
}

func toDTO(v *verification.Verification) VerificationDTO {
	return VerificationDTO{
		ID:           v.ID().String(),
		DocumentType: v.DocumentType().String(),
		MaskedNumber: v.MaskedNumber(),
		Valid:        v.Valid(),
		Attributes:   v.Attributes(),
		CheckedAt:    v.CheckedAt(),
	}
}
