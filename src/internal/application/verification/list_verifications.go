package verification

import (
	validation "github.com/jellydator/validation"

	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
)

// ===========================
// ListVerifications Use Case
// ===========================

// ListVerificationsQuery 依證件類型列出最新紀錄
//
// Limit 為 0 時使用預設上限；超過上限時截斷為上限
type ListVerificationsQuery struct {
	DocumentType string
	Limit        int
}

// Validate 檢查查詢欄位
func (q ListVerificationsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.DocumentType, validation.Required, notBlank),
		validation.Field(&q.Limit, validation.Min(0)),
	)
}

// ListVerificationsUseCase 列出驗證紀錄
type ListVerificationsUseCase interface {
	Execute(query ListVerificationsQuery) ([]VerificationDTO, error)
}

// ListVerificationsUseCaseImpl ListVerificationsUseCase 實作
type ListVerificationsUseCaseImpl struct {
	repo     verification.Repository
	maxLimit int
}

// NewListVerificationsUseCase 創建 ListVerificationsUseCase
//
// maxLimit 同時是預設筆數與上限（VERIFICATION_LIST_LIMIT）
func NewListVerificationsUseCase(repo verification.Repository, maxLimit int) ListVerificationsUseCase {
	if maxLimit <= 0 {
		maxLimit = 50
	}
	return &ListVerificationsUseCaseImpl{repo: repo, maxLimit: maxLimit}
}

// Execute 依檢查時間由新到舊列出
//
// 錯誤處理：
// - 查詢參數驗證失敗 → ErrInvalidCommand
// - 不支援的證件類型 → verification.ErrInvalidDocumentType
func (uc *ListVerificationsUseCaseImpl) Execute(query ListVerificationsQuery) ([]VerificationDTO, error) {
	if err := query.Validate(); err != nil {
		return nil, wrapValidationError(err)
	}

	documentType, err := verification.ParseDocumentType(query.DocumentType)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit == 0 || limit > uc.maxLimit {
		limit = uc.maxLimit
	}

	found, err := uc.repo.FindByDocumentType(nil, documentType, limit)
	if err != nil {
		return nil, err
	}

	out := make([]VerificationDTO, 0, len(found))
	for _, v := range found {
		out = append(out, toDTO(v))
	}
	return out, nil
}
