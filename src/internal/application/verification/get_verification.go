package verification

import (
	validation "github.com/jellydator/validation"

	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
)

// ===========================
// GetVerification Use Case
// ===========================

// GetVerificationQuery 查詢單筆驗證紀錄
type GetVerificationQuery struct {
	ID string
}

// Validate 檢查查詢欄位
func (q GetVerificationQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.ID, validation.Required, notBlank),
	)
}

// GetVerificationUseCase 依 ID 讀取驗證紀錄
type GetVerificationUseCase interface {
	Execute(query GetVerificationQuery) (*VerificationDTO, error)
}

// GetVerificationUseCaseImpl GetVerificationUseCase 實作
type GetVerificationUseCaseImpl struct {
	repo verification.Repository
}

// NewGetVerificationUseCase 創建 GetVerificationUseCase
func NewGetVerificationUseCase(repo verification.Repository) GetVerificationUseCase {
	return &GetVerificationUseCaseImpl{repo: repo}
}

// Execute 讀取紀錄（不使用交易）
//
// 錯誤處理：
// - 查詢參數為空 → ErrInvalidCommand
// - ID 格式錯誤 → verification.ErrInvalidVerificationID
// - 不存在 → verification.ErrVerificationNotFound
func (uc *GetVerificationUseCaseImpl) Execute(query GetVerificationQuery) (*VerificationDTO, error) {
	if err := query.Validate(); err != nil {
		return nil, wrapValidationError(err)
	}

	id, err := verification.VerificationIDFromString(query.ID)
	if err != nil {
		return nil, err
	}

	v, err := uc.repo.FindByID(nil, id)
	if err != nil {
		return nil, err
	}

	dto := toDTO(v)
	return &dto, nil
}
