package persistence_test

import (
	"testing"

	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"github.com/jackyeh168/idcheck/src/internal/infrastructure/persistence"
	verificationrepo "github.com/jackyeh168/idcheck/src/internal/infrastructure/persistence/verification"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ===========================
// 測試輔助函數
// ===========================

// setupTestDB 創建測試用的 SQLite in-memory 資料庫
//
// 單一連線：":memory:" 每條連線都是獨立的資料庫
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := persistence.OpenDatabase(persistence.DatabaseOptions{
		ConnectionString:   ":memory:",
		MaxOpenConnections: 1,
		LogLevel:           "silent",
	})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() { _ = persistence.CloseDatabase(db) })

	require.NoError(t, verificationrepo.AutoMigrate(db), "failed to migrate test database")
	return db
}

// newTestVerification 創建測試用的驗證紀錄
func newTestVerification(t *testing.T) *verification.Verification {
	t.Helper()

	v, err := verification.NewVerification(verification.DocumentTypeKTP, "************0001", true, nil)
	require.NoError(t, err)
	return v
}
