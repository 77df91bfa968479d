package verification

import (
	"strings"
	"time"

	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// ===========================
// Verification 聚合根
// ===========================

// Verification 一次證件檢查的稽核紀錄
//
// 業務規則：
// - 只保存遮罩後的號碼，不保存原始號碼
// - attributes 只放非識別性的解碼結果（例如省份、性別）
// - 建立後不可變更
type Verification struct {
	id           VerificationID
	documentType DocumentType
	maskedNumber string
	valid        bool
	attributes   map[string]string
	checkedAt    time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// NewVerification 建立新的驗證紀錄並發布 DocumentCheckedEvent
//
// 錯誤：
// - documentType 不支援 → ErrInvalidDocumentType
// - maskedNumber 為空白 → ErrEmptyMaskedNumber
func NewVerification(
	documentType DocumentType,
	maskedNumber string,
	valid bool,
	attributes map[string]string,
) (*Verification, error) {
	if !documentType.IsValid() {
		return nil, ErrInvalidDocumentType.WithContext("document_type", string(documentType))
	}
	if strings.TrimSpace(maskedNumber) == "" {
		return nil, ErrEmptyMaskedNumber.WithContext("document_type", string(documentType))
	}

	v := &Verification{
		id:           NewVerificationID(),
		documentType: documentType,
		maskedNumber: maskedNumber,
		valid:        valid,
		attributes:   copyAttributes(attributes),
		checkedAt:    time.Now().UTC(),
		events:       make([]shared.DomainEvent, 0),
	}
	v.events = append(v.events, NewDocumentCheckedEvent(v.id, documentType, valid, v.checkedAt))

	return v, nil
}

// ReconstructVerification 從資料庫還原（不發布事件）
//
// 錯誤：任一欄位不合法 → ErrCorruptedVerification
func ReconstructVerification(
	id VerificationID,
	documentType DocumentType,
	maskedNumber string,
	valid bool,
	attributes map[string]string,
	checkedAt time.Time,
) (*Verification, error) {
	if id.IsEmpty() {
		return nil, ErrCorruptedVerification.WithContext("reason", "empty verification ID")
	}
	if !documentType.IsValid() {
		return nil, ErrCorruptedVerification.WithContext(
			"id", id.String(),
			"document_type", string(documentType),
		)
	}
	if maskedNumber == "" {
		return nil, ErrCorruptedVerification.WithContext(
			"id", id.String(),
			"reason", "empty masked number",
		)
	}

	return &Verification{
		id:           id,
		documentType: documentType,
		maskedNumber: maskedNumber,
		valid:        valid,
		attributes:   copyAttributes(attributes),
		checkedAt:    checkedAt,
		events:       make([]shared.DomainEvent, 0),
	}, nil
}

func copyAttributes(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ===========================
// 查詢方法
// ===========================

// ID 紀錄 ID
func (v *Verification) ID() VerificationID {
	return v.id
}

// DocumentType 證件類型
func (v *Verification) DocumentType() DocumentType {
	return v.documentType
}

// MaskedNumber 遮罩後號碼
func (v *Verification) MaskedNumber() string {
	return v.maskedNumber
}

// Valid 檢查結果
func (v *Verification) Valid() bool {
	return v.valid
}

// Attributes 解碼屬性（回傳副本）
func (v *Verification) Attributes() map[string]string {
	return copyAttributes(v.attributes)
}

// CheckedAt 檢查時間（UTC）
func (v *Verification) CheckedAt() time.Time {
	return v.checkedAt
}

// PullEvents 獲取所有待發布事件並清空列表
func (v *Verification) PullEvents() []shared.DomainEvent {
	events := v.events
	v.events = make([]shared.DomainEvent, 0)
	return events
}
