package verification_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/idcheck/src/internal/domain/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// Verification 建構測試
// ===========================

func TestNewVerification_Valid_Success(t *testing.T) {
	// Arrange
	attrs := map[string]string{"province_code": "32", "gender": "male"}

	// Act
	v, err := verification.NewVerification(verification.DocumentTypeKTP, "************0001", true, attrs)

	// Assert
	require.NoError(t, err)
	assert.False(t, v.ID().IsEmpty())
	assert.Equal(t, verification.DocumentTypeKTP, v.DocumentType())
	assert.Equal(t, "************0001", v.MaskedNumber())
	assert.True(t, v.Valid())
	assert.Equal(t, attrs, v.Attributes())
	assert.WithinDuration(t, time.Now(), v.CheckedAt(), time.Minute)
}

func TestNewVerification_InvalidDocumentType_ReturnsError(t *testing.T) {
	// Act
	v, err := verification.NewVerification("passport_x", "****1234", false, nil)

	// Assert
	assert.Nil(t, v)
	assert.ErrorIs(t, err, verification.ErrInvalidDocumentType)
}

func TestNewVerification_BlankMaskedNumber_ReturnsError(t *testing.T) {
	// Act
	v, err := verification.NewVerification(verification.DocumentTypeNPWP, "   ", false, nil)

	// Assert
	assert.Nil(t, v)
	assert.ErrorIs(t, err, verification.ErrEmptyMaskedNumber)
}

func TestNewVerification_CopiesAttributes(t *testing.T) {
	// Arrange
	attrs := map[string]string{"gender": "female"}
	v, err := verification.NewVerification(verification.DocumentTypeKTP, "****0002", true, attrs)
	require.NoError(t, err)

	// Act
	attrs["gender"] = "male"
	got := v.Attributes()
	got["gender"] = "changed"

	// Assert
	assert.Equal(t, "female", v.Attributes()["gender"])
}

func TestNewVerification_PublishesDocumentCheckedEvent(t *testing.T) {
	// Arrange
	v, err := verification.NewVerification(verification.DocumentTypePhone, "*******6789", false, nil)
	require.NoError(t, err)

	// Act
	events := v.PullEvents()

	// Assert
	require.Len(t, events, 1)
	assert.Equal(t, "verification.document_checked", events[0].EventType())
	assert.Equal(t, v.ID().String(), events[0].AggregateID())
	assert.NotEmpty(t, events[0].EventID())

	checked, ok := events[0].(*verification.DocumentCheckedEvent)
	require.True(t, ok)
	assert.Equal(t, verification.DocumentTypePhone, checked.DocumentType())
	assert.False(t, checked.Valid())

	assert.Empty(t, v.PullEvents(), "PullEvents 之後事件清空")
}

// ===========================
// ReconstructVerification 測試
// ===========================

func TestReconstructVerification_Valid_NoEvents(t *testing.T) {
	// Arrange
	id := verification.NewVerificationID()
	checkedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	// Act
	v, err := verification.ReconstructVerification(
		id, verification.DocumentTypePassport, "*****4567", true, nil, checkedAt,
	)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.Equals(v.ID()))
	assert.Equal(t, checkedAt, v.CheckedAt())
	assert.Empty(t, v.Attributes())
	assert.Empty(t, v.PullEvents())
}

func TestReconstructVerification_Corrupted_ReturnsError(t *testing.T) {
	id := verification.NewVerificationID()
	now := time.Now()

	tests := []struct {
		name         string
		id           verification.VerificationID
		documentType verification.DocumentType
		masked       string
	}{
		{"空 ID", verification.VerificationID{}, verification.DocumentTypeKTP, "****0001"},
		{"未知證件類型", id, "unknown", "****0001"},
		{"空遮罩號碼", id, verification.DocumentTypeKTP, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			v, err := verification.ReconstructVerification(tt.id, tt.documentType, tt.masked, true, nil, now)

			// Assert
			assert.Nil(t, v)
			assert.ErrorIs(t, err, verification.ErrCorruptedVerification)
		})
	}
}

// ===========================
// DocumentType / VerificationID 測試
// ===========================

func TestParseDocumentType(t *testing.T) {
	for _, dt := range verification.DocumentTypes() {
		got, err := verification.ParseDocumentType(" " + string(dt) + " ")

		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	got, err := verification.ParseDocumentType("KTP")
	require.NoError(t, err)
	assert.Equal(t, verification.DocumentTypeKTP, got)

	_, err = verification.ParseDocumentType("sim_card")
	assert.ErrorIs(t, err, verification.ErrInvalidDocumentType)
	assert.Contains(t, err.Error(), "document_type=sim_card")
}

func TestDocumentTypes_ReturnsCopy(t *testing.T) {
	types := verification.DocumentTypes()
	types[0] = "tampered"

	assert.Equal(t, verification.DocumentTypeKTP, verification.DocumentTypes()[0])
	assert.Len(t, types, 10)
}

func TestVerificationIDFromString(t *testing.T) {
	id := verification.NewVerificationID()

	parsed, err := verification.VerificationIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))

	_, err = verification.VerificationIDFromString("not-a-uuid")
	assert.ErrorIs(t, err, verification.ErrInvalidVerificationID)
}
