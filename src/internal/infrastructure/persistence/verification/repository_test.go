package verification

import (
	"testing"
	"time"

	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"github.com/jackyeh168/idcheck/src/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ===========================
// Verification Repository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite，單一連線）
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := persistence.OpenDatabase(persistence.DatabaseOptions{
		ConnectionString:   ":memory:",
		MaxOpenConnections: 1,
		LogLevel:           "silent",
	})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() { _ = persistence.CloseDatabase(db) })

	require.NoError(t, AutoMigrate(db), "failed to migrate database schema")
	return db
}

func saveInTx(t *testing.T, db *gorm.DB, repo verification.Repository, v *verification.Verification) {
	t.Helper()

	err := persistence.NewGORMTransactionManager(db).InTransaction(func(ctx shared.TransactionContext) error {
		return repo.Save(ctx, v)
	})
	require.NoError(t, err)
}

func newTestVerification(t *testing.T, documentType verification.DocumentType, checkedAt time.Time) *verification.Verification {
	t.Helper()

	v, err := verification.ReconstructVerification(
		verification.NewVerificationID(),
		documentType,
		"************0001",
		true,
		map[string]string{"province_code": "32"},
		checkedAt,
	)
	require.NoError(t, err)
	return v
}

func TestRepository_Save_InTransaction_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)
	v, err := verification.NewVerification(
		verification.DocumentTypeKTP,
		"************0001",
		true,
		map[string]string{"province_code": "32", "gender": "male"},
	)
	require.NoError(t, err)

	// Act
	saveInTx(t, db, repo, v)

	// Assert
	var model VerificationGORM
	require.NoError(t, db.First(&model, "id = ?", v.ID().String()).Error)
	assert.Equal(t, "ktp", model.DocumentType)
	assert.Equal(t, "************0001", model.MaskedNumber)
	assert.True(t, model.Valid)
	assert.Equal(t, "male", model.Attributes["gender"])
}

func TestRepository_Save_WithoutTransaction_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)
	v := newTestVerification(t, verification.DocumentTypeNPWP, time.Now().UTC())

	// Act
	err := repo.Save(nil, v)

	// Assert
	assert.ErrorIs(t, err, verification.ErrRepositoryError)

	var count int64
	db.Model(&VerificationGORM{}).Count(&count)
	assert.Zero(t, count)
}

func TestRepository_Save_DuplicateID_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)
	v := newTestVerification(t, verification.DocumentTypeKTP, time.Now().UTC())
	saveInTx(t, db, repo, v)

	// Act
	err := persistence.NewGORMTransactionManager(db).InTransaction(func(ctx shared.TransactionContext) error {
		return repo.Save(ctx, v)
	})

	// Assert
	assert.ErrorIs(t, err, verification.ErrRepositoryError)
}

func TestRepository_FindByID_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)
	checkedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	v := newTestVerification(t, verification.DocumentTypeKTP, checkedAt)
	saveInTx(t, db, repo, v)

	// Act
	found, err := repo.FindByID(nil, v.ID())

	// Assert
	require.NoError(t, err)
	assert.True(t, v.ID().Equals(found.ID()))
	assert.Equal(t, verification.DocumentTypeKTP, found.DocumentType())
	assert.Equal(t, "************0001", found.MaskedNumber())
	assert.True(t, found.Valid())
	assert.Equal(t, map[string]string{"province_code": "32"}, found.Attributes())
	assert.True(t, checkedAt.Equal(found.CheckedAt()))
	assert.Empty(t, found.PullEvents(), "還原的聚合不應有待發布事件")
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)

	// Act
	found, err := repo.FindByID(nil, verification.NewVerificationID())

	// Assert
	assert.Nil(t, found)
	assert.ErrorIs(t, err, verification.ErrVerificationNotFound)
}

func TestRepository_FindByID_CorruptedRow_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)
	id := verification.NewVerificationID()
	require.NoError(t, db.Create(&VerificationGORM{
		ID:           id.String(),
		DocumentType: "fax_number",
		MaskedNumber: "****1234",
		CheckedAt:    time.Now().UTC(),
	}).Error)

	// Act
	_, err := repo.FindByID(nil, id)

	// Assert
	assert.ErrorIs(t, err, verification.ErrCorruptedVerification)
}

func TestRepository_FindByDocumentType_NewestFirstWithLimit(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	oldest := newTestVerification(t, verification.DocumentTypeKTP, base)
	middle := newTestVerification(t, verification.DocumentTypeKTP, base.Add(time.Hour))
	newest := newTestVerification(t, verification.DocumentTypeKTP, base.Add(2*time.Hour))
	otherType := newTestVerification(t, verification.DocumentTypePhone, base.Add(3*time.Hour))
	for _, v := range []*verification.Verification{middle, oldest, otherType, newest} {
		saveInTx(t, db, repo, v)
	}

	// Act
	limited, err := repo.FindByDocumentType(nil, verification.DocumentTypeKTP, 2)
	require.NoError(t, err)
	all, err := repo.FindByDocumentType(nil, verification.DocumentTypeKTP, 0)
	require.NoError(t, err)

	// Assert
	require.Len(t, limited, 2)
	assert.True(t, newest.ID().Equals(limited[0].ID()))
	assert.True(t, middle.ID().Equals(limited[1].ID()))

	require.Len(t, all, 3)
	assert.True(t, oldest.ID().Equals(all[2].ID()))
}

func TestRepository_FindByDocumentType_Empty(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewRepository(db)

	// Act
	got, err := repo.FindByDocumentType(nil, verification.DocumentTypeCreditCard, 10)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, got)
}
