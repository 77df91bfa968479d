package currency

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/idcheck/src/internal/domain/locale"
	"github.com/jackyeh168/idcheck/src/internal/domain/shared"
)

// ErrCodeInvalidAmount 金額指令驗證失敗
const ErrCodeInvalidAmount shared.ErrorCode = "AMOUNT_INVALID"

// ErrInvalidAmount 金額指令驗證失敗
var ErrInvalidAmount = shared.NewDomainError(ErrCodeInvalidAmount, "invalid amount")

// ===========================
// NormalizeAmount Use Case
// ===========================

// NormalizeAmountCommand 將使用者輸入的金額轉為數值與標準字串
type NormalizeAmountCommand struct {
	Amount string // 例如 "Rp 1.000.000,50"
}

// Validate 檢查指令欄位
func (c NormalizeAmountCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Amount, validation.Required, validation.Length(1, 64)),
	)
}

// AmountDTO 金額（Output DTO）
type AmountDTO struct {
	Value     decimal.Decimal
	Formatted string
}

// NormalizeAmountUseCase 依設定的 locale 解析並重新輸出金額
type NormalizeAmountUseCase interface {
	Execute(cmd NormalizeAmountCommand) (*AmountDTO, error)
	Format(amount decimal.Decimal) string
}

// NormalizeAmountUseCaseImpl NormalizeAmountUseCase 實作
type NormalizeAmountUseCaseImpl struct {
	locale locale.Locale
}

// NewNormalizeAmountUseCase 創建 NormalizeAmountUseCase
func NewNormalizeAmountUseCase(l locale.Locale) NormalizeAmountUseCase {
	return &NormalizeAmountUseCaseImpl{locale: l}
}

// Execute 解析金額並以相同 locale 輸出
//
// 無法解析的內容視為 0（與 locale.ParseCurrency 相同），不回傳錯誤
//
// 錯誤處理：
// - 空字串或過長 → ErrInvalidAmount
func (uc *NormalizeAmountUseCaseImpl) Execute(cmd NormalizeAmountCommand) (*AmountDTO, error) {
	if err := cmd.Validate(); err != nil {
		return nil, ErrInvalidAmount.WithContext("details", err.Error())
	}

	value := uc.locale.ParseCurrency(cmd.Amount)
	return &AmountDTO{
		Value:     value,
		Formatted: uc.locale.FormatCurrency(value),
	}, nil
}

// Format 以設定的 locale 輸出金額
func (uc *NormalizeAmountUseCaseImpl) Format(amount decimal.Decimal) string {
	return uc.locale.FormatCurrency(amount)
}
