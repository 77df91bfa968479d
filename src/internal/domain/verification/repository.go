package verification

import "github.com/jackyeh168/idcheck/src/internal/domain/shared"

// ===========================
// Verification Repository 介面
// ===========================

// Repository 驗證紀錄倉儲介面
//
// 寫入必須在 TransactionManager.InTransaction 內呼叫；讀取可傳 nil ctx（不使用交易）
//
// 事務使用範例：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       return repo.Save(ctx, v)
//   })
type Repository interface {
	// Save 保存新的驗證紀錄
	// 錯誤：ErrRepositoryError
	Save(ctx shared.TransactionContext, v *Verification) error

	// FindByID 根據 ID 查找
	// 返回：找到的紀錄，或 ErrVerificationNotFound
	FindByID(ctx shared.TransactionContext, id VerificationID) (*Verification, error)

	// FindByDocumentType 依檢查時間由新到舊，最多 limit 筆
	FindByDocumentType(ctx shared.TransactionContext, documentType DocumentType, limit int) ([]*Verification, error)
}
