package shared

import "time"

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() string     // 事件類型，例如 "verification.document_checked"
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}
