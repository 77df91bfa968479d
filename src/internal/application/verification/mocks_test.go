package verification

import (
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mocks
// ===========================

// MockRepository mock implementation of verification.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx shared.TransactionContext, v *verification.Verification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx shared.TransactionContext, id verification.VerificationID) (*verification.Verification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verification.Verification), args.Error(1)
}

func (m *MockRepository) FindByDocumentType(ctx shared.TransactionContext, documentType verification.DocumentType, limit int) ([]*verification.Verification, error) {
	args := m.Called(ctx, documentType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*verification.Verification), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}
