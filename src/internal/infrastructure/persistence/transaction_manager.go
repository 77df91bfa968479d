package persistence

import (
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager
// ===========================

// gormTransactionManager 以 gorm.DB.Transaction 實作 shared.TransactionManager
//
// 行為：
// - fn 回傳 nil → commit
// - fn 回傳 error → rollback，原樣回傳該 error
// - fn panic → rollback 後重新 panic
type gormTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建 TransactionManager
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &gormTransactionManager{db: db}
}

// InTransaction 在單一資料庫交易內執行 fn
func (m *gormTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
