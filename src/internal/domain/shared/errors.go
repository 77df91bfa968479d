package shared

import (
	"fmt"
	"sort"
	"strings"
)

// ===========================
// DomainError 結構化領域錯誤
// ===========================

// ErrorCode 領域錯誤代碼
type ErrorCode string

// DomainError 領域錯誤
//
// 約定：
// - 各 bounded context 以 package-level 變數宣告錯誤樣板（sentinel）
// - 回傳前透過 WithContext 附加上下文，不修改樣板本身
// - errors.Is 以 Code 比對，因此附加上下文後仍可與樣板比對成功
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// NewDomainError 建立錯誤樣板
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Error 實現 error 接口
//
// 上下文以 key 排序輸出，確保訊息穩定（方便測試與日誌比對）
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Context[k]))
	}
	return fmt.Sprintf("[%s] %s (context: %s)", e.Code, e.Message, strings.Join(pairs, ", "))
}

// WithContext 添加上下文信息（返回新的錯誤實例）
//
// 參數必須是成對的 key-value，key 必須是字串，否則 panic（屬於程式錯誤）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
