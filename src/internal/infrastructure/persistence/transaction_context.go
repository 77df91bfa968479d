package persistence

import (
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionContext 實作
// ===========================

// gormTransactionContext 包裝交易中的 *gorm.DB
//
// 只實作標記介面 shared.TransactionContext；GetDB 不在介面上，
// Domain 與 Application 層因此碰不到 GORM
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 以交易中的 *gorm.DB 建立 TransactionContext
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 交易中的 GORM 連線（僅供 repository 使用）
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}
