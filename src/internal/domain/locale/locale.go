package locale

// ===========================
// Locale 表
// ===========================

// SymbolPlacement 貨幣符號位置
type SymbolPlacement string

const (
	SymbolBefore SymbolPlacement = "before" // Rp 1.000
	SymbolAfter  SymbolPlacement = "after"  // 1.000 Rp
)

// Locale 數字與貨幣格式設定
//
// 所有格式化只依賴這張表，不讀取主機的 locale 資料
type Locale struct {
	Code             string
	CurrencySymbol   string
	GroupSeparator   string
	DecimalSeparator string
	SymbolPlacement  SymbolPlacement
	SymbolSpacing    bool  // 符號與數字之間是否加一般空白
	FractionDigits   int32 // 格式化時保留的小數位數
}

// Indonesian 印尼盾（id-ID，IDR）
var Indonesian = Locale{
	Code:             "id-ID",
	CurrencySymbol:   "Rp",
	GroupSeparator:   ".",
	DecimalSeparator: ",",
	SymbolPlacement:  SymbolBefore,
	SymbolSpacing:    true,
	FractionDigits:   0,
}
