package shared

// TransactionContext 事務上下文介面（標記介面）
//
// 行為約定：
// - ctx != nil：在呼叫端的事務中執行
// - ctx == nil：auto-commit 模式，只允許讀操作使用
//
// Repository 約束：
// - Save() 等寫操作：ctx 必須 non-nil
// - FindByID() 等讀操作：ctx 可為 nil
//
// Infrastructure Layer 負責實作（GORM），Domain / Application Layer 只依賴此介面
type TransactionContext interface{}

// TransactionManager 事務管理器介面
//
// fn 回傳錯誤或 panic 時回滾，否則提交
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
