package verification

import (
	"time"

	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// VerificationGORM 驗證紀錄資料表模型
//
// 資料庫約束：
// - id: 主鍵（UUID）
// - (document_type, checked_at): 複合索引，供依類型列出最新紀錄
// - masked_number: 只存遮罩後號碼
// - attributes: JSON 文字欄位
type VerificationGORM struct {
	ID           string            `gorm:"column:id;type:varchar(36);primaryKey"`
	DocumentType string            `gorm:"column:document_type;type:varchar(32);not null;index:idx_verifications_type_checked,priority:1"`
	MaskedNumber string            `gorm:"column:masked_number;type:varchar(64);not null"`
	Valid        bool              `gorm:"column:valid;not null"`
	Attributes   map[string]string `gorm:"column:attributes;type:text;serializer:json"`
	CheckedAt    time.Time         `gorm:"column:checked_at;not null;index:idx_verifications_type_checked,priority:2"`
	CreatedAt    time.Time         `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (VerificationGORM) TableName() string {
	return "verifications"
}

// AutoMigrate 建立或更新 verifications 資料表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&VerificationGORM{})
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 聚合
//
// 無法解析的 ID 或證件類型視為資料損毀（ErrCorruptedVerification）
func (g *VerificationGORM) toDomain() (*verification.Verification, error) {
	id, err := verification.VerificationIDFromString(g.ID)
	if err != nil {
		return nil, verification.ErrCorruptedVerification.WithContext(
			"id", g.ID,
			"reason", err.Error(),
		)
	}

	return verification.ReconstructVerification(
		id,
		verification.DocumentType(g.DocumentType),
		g.MaskedNumber,
		g.Valid,
		g.Attributes,
		g.CheckedAt.UTC(),
	)
}

// toGORM 將 Domain 聚合轉換為 GORM 模型
func toGORM(v *verification.Verification) *VerificationGORM {
	return &VerificationGORM{
		ID:           v.ID().String(),
		DocumentType: v.DocumentType().String(),
		MaskedNumber: v.MaskedNumber(),
		Valid:        v.Valid(),
		Attributes:   v.Attributes(),
		CheckedAt:    v.CheckedAt(),
	}
}
