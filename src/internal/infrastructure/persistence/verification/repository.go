package verification

import (
	"errors"

	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// RepositoryImpl
// ===========================

// RepositoryImpl 驗證紀錄倉儲實現（GORM）
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository 創建驗證紀錄倉儲
func NewRepository(db *gorm.DB) verification.Repository {
	return &RepositoryImpl{db: db}
}

// Save 保存新的驗證紀錄
//
// 必須在交易內呼叫；ctx 不是 GORM 交易上下文時回傳 ErrRepositoryError
func (r *RepositoryImpl) Save(ctx shared.TransactionContext, v *verification.Verification) error {
	txCtx, ok := ctx.(gormTransactionContext)
	if !ok {
		return verification.ErrRepositoryError.WithContext(
			"operation", "save",
			"reason", "transaction context required",
		)
	}

	if err := txCtx.GetDB().Create(toGORM(v)).Error; err != nil {
		return verification.ErrRepositoryError.WithContext(
			"operation", "save",
			"id", v.ID().String(),
			"cause", err.Error(),
		)
	}
	return nil
}

// FindByID 根據 ID 查找
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → ErrVerificationNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *RepositoryImpl) FindByID(ctx shared.TransactionContext, id verification.VerificationID) (*verification.Verification, error) {
	var model VerificationGORM

	result := r.getDB(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, verification.ErrVerificationNotFound.WithContext("id", id.String())
		}
		return nil, result.Error
	}

	return model.toDomain()
}

// FindByDocumentType 依檢查時間由新到舊列出，limit <= 0 表示不限筆數
func (r *RepositoryImpl) FindByDocumentType(
	ctx shared.TransactionContext,
	documentType verification.DocumentType,
	limit int,
) ([]*verification.Verification, error) {
	if limit <= 0 {
		limit = -1
	}

	var models []VerificationGORM
	result := r.getDB(ctx).
		Where("document_type = ?", documentType.String()).
		Order("checked_at DESC").
		Order("id").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]*verification.Verification, 0, len(models))
	for i := range models {
		v, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// getDB ctx 為 GORM 交易上下文時使用交易連線，否則使用預設連線（auto-commit）
func (r *RepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}
