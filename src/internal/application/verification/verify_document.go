package verification

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
)

// ===========================
// VerifyDocument Use Case
// ===========================

// VerifyDocumentCommand 驗證證件指令（Input DTO）
type VerifyDocumentCommand struct {
	DocumentType string // ktp / npwp / vehicle_plate / phone / ...
	Number       string // 原始號碼，不會被保存或寫入日誌
}

// Validate 檢查指令欄位
func (c VerifyDocumentCommand) Validate() error {
	allowed := make([]interface{}, 0, len(verification.DocumentTypes()))
	for _, dt := range verification.DocumentTypes() {
		allowed = append(allowed, dt.String())
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.DocumentType, validation.Required, validation.In(allowed...)),
		validation.Field(&c.Number, validation.Required, notBlank, validation.Length(1, 64)),
	)
}

// VerifyDocumentResult 驗證結果（Output DTO）
//
// Canonical、Identity、Links 只在回應中出現，不會被保存
type VerifyDocumentResult struct {
	Verification VerificationDTO
	Canonical    string
	Identity     *KTPIdentityDTO
	Links        map[string]string
}

// VerifyDocumentUseCase 驗證證件並保存稽核紀錄
type VerifyDocumentUseCase interface {
	Execute(cmd VerifyDocumentCommand) (*VerifyDocumentResult, error)
}

// VerifyDocumentUseCaseImpl VerifyDocumentUseCase 實作
type VerifyDocumentUseCaseImpl struct {
	repo      verification.Repository
	txManager shared.TransactionManager
	logger    *slog.Logger
}

// NewVerifyDocumentUseCase 創建 VerifyDocumentUseCase
func NewVerifyDocumentUseCase(
	repo verification.Repository,
	txManager shared.TransactionManager,
	logger *slog.Logger,
) VerifyDocumentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifyDocumentUseCaseImpl{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute 執行證件驗證
//
// 業務流程：
// 1. 正規化並驗證指令
// 2. 依證件類型檢查、遮罩、解碼
// 3. 在交易中保存遮罩後的結果
// 4. 記錄日誌並回傳結果
//
// 號碼無效不是錯誤：結果的 Valid 為 false，紀錄照常保存。
//
// 錯誤處理：
// - 指令驗證失敗 → ErrInvalidCommand
// - 資料庫錯誤 → 包裝後回傳
func (uc *VerifyDocumentUseCaseImpl) Execute(cmd VerifyDocumentCommand) (*VerifyDocumentResult, error) {
	// Step 1: 驗證指令
	cmd.DocumentType = strings.ToLower(strings.TrimSpace(cmd.DocumentType))
	if err := cmd.Validate(); err != nil {
		return nil, wrapValidationError(err)
	}
	documentType, err := verification.ParseDocumentType(cmd.DocumentType)
	if err != nil {
		return nil, err
	}

	// Step 2: 檢查證件
	check, ok := checkers[documentType]
	if !ok {
		return nil, verification.ErrInvalidDocumentType.WithContext("document_type", cmd.DocumentType)
	}
	outcome := check(cmd.Number)

	v, err := verification.NewVerification(documentType, outcome.masked, outcome.valid, outcome.attributes)
	if err != nil {
		return nil, err
	}

	// Step 3: 保存
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.repo.Save(ctx, v)
	})
	if err != nil {
		uc.logger.Error("failed to save verification",
			slog.String("document_type", documentType.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to save verification: %w", err)
	}

	// Step 4: 日誌
	for _, event := range v.PullEvents() {
		uc.logger.Debug("domain event",
			slog.String("event_id", event.EventID()),
			slog.String("event_type", event.EventType()),
			slog.String("aggregate_id", event.AggregateID()),
		)
	}
	uc.logger.Info("document verified",
		slog.String("verification_id", v.ID().String()),
		slog.String("document_type", documentType.String()),
		slog.String("masked_number", v.MaskedNumber()),
		slog.Bool("valid", v.Valid()),
	)

	return &VerifyDocumentResult{
		Verification: toDTO(v),
		Canonical:    outcome.canonical,
		Identity:     outcome.identity,
		Links:        outcome.links,
	}, nil
}
