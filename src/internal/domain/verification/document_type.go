package verification

import "strings"

// ===========================
// DocumentType 證件類型
// ===========================

// DocumentType 可驗證的證件類型
type DocumentType string

const (
	DocumentTypeKTP            DocumentType = "ktp"
	DocumentTypeNPWP           DocumentType = "npwp"
	DocumentTypeVehiclePlate   DocumentType = "vehicle_plate"
	DocumentTypePhone          DocumentType = "phone"
	DocumentTypePassport       DocumentType = "passport"
	DocumentTypeDrivingLicense DocumentType = "driving_license"
	DocumentTypeFamilyCard     DocumentType = "family_card"
	DocumentTypePostalCode     DocumentType = "postal_code"
	DocumentTypeBankAccount    DocumentType = "bank_account"
	DocumentTypeCreditCard     DocumentType = "credit_card"
)

var documentTypes = []DocumentType{
	DocumentTypeKTP,
	DocumentTypeNPWP,
	DocumentTypeVehiclePlate,
	DocumentTypePhone,
	DocumentTypePassport,
	DocumentTypeDrivingLicense,
	DocumentTypeFamilyCard,
	DocumentTypePostalCode,
	DocumentTypeBankAccount,
	DocumentTypeCreditCard,
}

// DocumentTypes 所有支援的證件類型（回傳副本）
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(documentTypes))
	copy(out, documentTypes)
	return out
}

// ParseDocumentType 解析證件類型，不分大小寫、忽略前後空白
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	if !dt.IsValid() {
		return "", ErrInvalidDocumentType.WithContext("document_type", s)
	}
	return dt, nil
}

// IsValid 是否為支援的證件類型
func (d DocumentType) IsValid() bool {
	for _, dt := range documentTypes {
		if d == dt {
			return true
		}
	}
	return false
}

// String 實作 fmt.Stringer
func (d DocumentType) String() string {
	return string(d)
}
