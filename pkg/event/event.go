// Package event 定义回测与交易流水线的标准事件词汇表：
// 行情（MarketEvent）、信号（SignalEvent）、订单（OrderEvent）、成交（FillEvent）
// 四类带时间戳的记录。本包只负责结构化表示、方向归一化与可读摘要，
// 不做调度、撮合、行情模拟、持久化与网络传输。
package event

import "time"

// Kind 事件类型标签
type Kind string

const (
	KindMarket Kind = "MARKET"
	KindSignal Kind = "SIGNAL"
	KindOrder  Kind = "ORDER"
	KindFill   Kind = "FILL"
)

// Event 所有事件变体的统一接口。
// 事件构造完成后按约定视为只读，可在多个 goroutine 间无同步地并发读取。
type Event interface {
	// Kind 返回事件类型标签
	Kind() Kind
	// OccurredAt 返回事件时间戳
	OccurredAt() time.Time
	// String 返回人类可读摘要，仅用于日志与调试，不承诺可逆
	String() string
}

// now 是本包唯一的非确定性输入。测试内可替换为固定时钟。
var now = func() time.Time { return time.Now().UTC() }

// timestampOrNow 未显式指定时间戳时取当前 UTC 时间，显式指定则原样保留。
// 零值 time.Time 是"未指定"的哨兵，显式传零值等同于未指定。
func timestampOrNow(ts time.Time) time.Time {
	if ts.IsZero() {
		return now()
	}
	return ts
}

// cloneData 为每个事件实例分配独立的扩展字段副本，
// 保证任意两个事件不会共享同一个可变 map。
func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
