package verification

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// DocumentChecked 領域事件
// ===========================

// DocumentCheckedEvent 證件已檢查事件
type DocumentCheckedEvent struct {
	eventID        string
	verificationID VerificationID
	documentType   DocumentType
	valid          bool
	occurredAt     time.Time
}

// NewDocumentCheckedEvent 創建證件已檢查事件
func NewDocumentCheckedEvent(
	verificationID VerificationID,
	documentType DocumentType,
	valid bool,
	occurredAt time.Time,
) *DocumentCheckedEvent {
	return &DocumentCheckedEvent{
		eventID:        uuid.New().String(),
		verificationID: verificationID,
		documentType:   documentType,
		valid:          valid,
		occurredAt:     occurredAt,
	}
}

// EventID 實現 DomainEvent 介面
func (e *DocumentCheckedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *DocumentCheckedEvent) EventType() string {
	return "verification.document_checked"
}

// OccurredAt 實現 DomainEvent 介面
func (e *DocumentCheckedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *DocumentCheckedEvent) AggregateID() string {
	return e.verificationID.String()
}

// DocumentType 被檢查的證件類型
func (e *DocumentCheckedEvent) DocumentType() DocumentType {
	return e.documentType
}

// Valid 檢查結果
func (e *DocumentCheckedEvent) Valid() bool {
	return e.valid
}
