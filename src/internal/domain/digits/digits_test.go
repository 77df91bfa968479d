package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip_RemovesAllWhitespace(t *testing.T) {
	assert.Equal(t, "3174050607890001", Strip("3174 0506 0789 0001"))
	assert.Equal(t, "abc", Strip("\ta b\nc "))
	assert.Equal(t, "", Strip("   "))
}

func TestIsASCIIDigits(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0123456789", true},
		{"", false},
		{"12a4", false},
		{"١٢٣", false}, // Arabic-Indic digits are not ASCII
		{"12 34", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsASCIIDigits(tt.input))
		})
	}
}

func TestField_SliceAndInt(t *testing.T) {
	// Arrange
	f := Field{Name: "month", Offset: 8, Width: 2}
	input := "3174050607890001"

	// Act
	raw := f.Slice(input)
	n, ok := f.Int(input)

	// Assert
	assert.Equal(t, "07", raw)
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, 10, f.End())
}

func TestField_Int_NonDigit_ReturnsFalse(t *testing.T) {
	f := Field{Name: "x", Offset: 0, Width: 2}

	_, ok := f.Int("a1")

	assert.False(t, ok)
}

func TestIsValidLuhn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"visa test card", "4111111111111111", true},
		{"mastercard test card", "5500000000000004", true},
		{"amex test card", "378282246310005", true},
		{"single zero", "0", true},
		{"classic example", "79927398713", true},
		{"off by one", "79927398714", false},
		{"broken visa", "4111111111111112", false},
		{"empty", "", false},
		{"non digit", "4111-1111", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidLuhn(tt.input))
		})
	}
}

func TestMaskTail(t *testing.T) {
	assert.Equal(t, "************0001", MaskTail("3174050607890001", 4))
	assert.Equal(t, "1234", MaskTail("1234", 4))
	assert.Equal(t, "12", MaskTail("12", 4))
	assert.Equal(t, "***", MaskTail("abc", 0))
	assert.Equal(t, "***", MaskTail("abc", -1))
}
