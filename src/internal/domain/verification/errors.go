package verification

import "github.com/jackyeh168/idcheck/src/internal/domain/shared"

// ===========================
// 錯誤代碼定義
// ===========================

const (
	ErrCodeInvalidVerificationID  shared.ErrorCode = "VERIFICATION_ID_INVALID"
	ErrCodeInvalidDocumentType    shared.ErrorCode = "DOCUMENT_TYPE_INVALID"
	ErrCodeEmptyMaskedNumber      shared.ErrorCode = "MASKED_NUMBER_EMPTY"
	ErrCodeCorruptedVerification  shared.ErrorCode = "VERIFICATION_CORRUPTED"
	ErrCodeVerificationNotFound   shared.ErrorCode = "VERIFICATION_NOT_FOUND"
	ErrCodeVerificationRepository shared.ErrorCode = "VERIFICATION_REPOSITORY_ERROR"
)

var (
	// ErrInvalidVerificationID 無法解析的 VerificationID
	ErrInvalidVerificationID = shared.NewDomainError(
		ErrCodeInvalidVerificationID,
		"invalid verification ID",
	)

	// ErrInvalidDocumentType 未支援的證件類型
	ErrInvalidDocumentType = shared.NewDomainError(
		ErrCodeInvalidDocumentType,
		"unsupported document type",
	)

	// ErrEmptyMaskedNumber 遮罩後號碼為空
	ErrEmptyMaskedNumber = shared.NewDomainError(
		ErrCodeEmptyMaskedNumber,
		"masked number cannot be empty",
	)

	// ErrCorruptedVerification 資料庫中的紀錄無法還原
	ErrCorruptedVerification = shared.NewDomainError(
		ErrCodeCorruptedVerification,
		"stored verification is corrupted",
	)

	// ErrVerificationNotFound 紀錄不存在
	ErrVerificationNotFound = shared.NewDomainError(
		ErrCodeVerificationNotFound,
		"verification not found",
	)

	// ErrRepositoryError 倉儲操作失敗（通用）
	ErrRepositoryError = shared.NewDomainError(
		ErrCodeVerificationRepository,
		"verification repository operation failed",
	)
)
