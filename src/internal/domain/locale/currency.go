package locale

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix 最長可解析的數字前綴（已正規化為 "." 小數點）
var numericPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)

// ParseCurrency 以印尼格式解析金額，例如 "Rp 1.000.000,50" → 1000000.5
func ParseCurrency(input string) decimal.Decimal {
	return Indonesian.ParseCurrency(input)
}

// FormatCurrency 以印尼格式輸出金額，例如 1000000 → "Rp 1.000.000"
func FormatCurrency(amount decimal.Decimal) string {
	return Indonesian.FormatCurrency(amount)
}

// ParseCurrency 解析金額字串
//
// 規則：
// 1. 只保留數字、千分位、小數點符號與 "-"
// 2. 移除千分位，第一個小數點符號轉為 "."
// 3. 解析最長的數字前綴，無法解析時回傳 0（不回傳錯誤）
func (l Locale) ParseCurrency(input string) decimal.Decimal {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case strings.ContainsRune(l.GroupSeparator, r), strings.ContainsRune(l.DecimalSeparator, r):
			b.WriteRune(r)
		}
	}
	clean := b.String()

	if l.GroupSeparator != "" {
		clean = strings.ReplaceAll(clean, l.GroupSeparator, "")
	}
	if l.DecimalSeparator != "" {
		clean = strings.Replace(clean, l.DecimalSeparator, ".", 1)
	}

	prefix := numericPrefix.FindString(clean)
	if prefix == "" {
		return decimal.Zero
	}
	// ".75" / "-.75" / "12." 補成完整的小數字面值
	prefix = strings.TrimSuffix(prefix, ".")
	if unsigned := strings.TrimPrefix(prefix, "-"); strings.HasPrefix(unsigned, ".") {
		prefix = strings.TrimSuffix(prefix, unsigned) + "0" + unsigned
	}
	amount, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatCurrency 輸出金額字串
//
// 四捨五入到 FractionDigits（遠離零），負數在符號前加 "-"，例如 "-Rp 1.000"
func (l Locale) FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(l.FractionDigits)
	negative := rounded.IsNegative()

	fixed := rounded.Abs().StringFixed(l.FractionDigits)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	number := groupThousands(intPart, l.GroupSeparator)
	if fracPart != "" {
		number += l.DecimalSeparator + fracPart
	}

	space := ""
	if l.SymbolSpacing {
		space = " "
	}

	var out string
	if l.SymbolPlacement == SymbolAfter {
		out = number + space + l.CurrencySymbol
	} else {
		out = l.CurrencySymbol + space + number
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupThousands 每三位插入分隔符
func groupThousands(intPart, sep string) string {
	if len(intPart) <= 3 || sep == "" {
		return intPart
	}

	var b strings.Builder
	head := len(intPart) % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String()
}
