package event

import (
	"fmt"
	"time"
)

// SignalEvent 策略信号事件。
// SignalType 为自由字符串（如 "LONG"、"SHORT"、"EXIT"），
// Direction 按约定取 {-1, 0, 1}，0 表示平仓/离场，类型上不做强制。
type SignalEvent struct {
	// 交易对符号
	Symbol string `json:"symbol"`
	// 事件时间戳
	Timestamp time.Time `json:"timestamp"`
	// 信号类型
	SignalType string `json:"signal_type"`
	// 信号方向
	Direction Direction `json:"direction"`
	// 信号强度，默认 1.0
	Strength float64 `json:"strength"`
	// 扩展字段，每个实例独立持有
	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

// SignalOption SignalEvent 的可选构造参数
type SignalOption func(*SignalEvent)

// WithSignalTimestamp 显式指定时间戳，原样保留。零值视为未指定。
func WithSignalTimestamp(ts time.Time) SignalOption {
	return func(e *SignalEvent) { e.Timestamp = ts }
}

// WithSignalStrength 指定信号强度
func WithSignalStrength(strength float64) SignalOption {
	return func(e *SignalEvent) { e.Strength = strength }
}

// WithSignalData 附加扩展字段，内容会被复制
func WithSignalData(data map[string]any) SignalOption {
	return func(e *SignalEvent) { e.AdditionalData = cloneData(data) }
}

// NewSignalEvent 创建策略信号事件。
// 信号方向取规范整数表示，0 为合法取值，不触发 Order/Fill 的双输入归一化。
func NewSignalEvent(symbol, signalType string, direction Direction, opts ...SignalOption) *SignalEvent {
	e := &SignalEvent{
		Symbol:         symbol,
		SignalType:     signalType,
		Direction:      direction,
		Strength:       1.0,
		AdditionalData: make(map[string]any),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Timestamp = timestampOrNow(e.Timestamp)
	return e
}

func (e *SignalEvent) Kind() Kind            { return KindSignal }
func (e *SignalEvent) OccurredAt() time.Time { return e.Timestamp }

func (e *SignalEvent) String() string {
	return fmt.Sprintf("SIGNAL %s %s %s strength=%.2f @ %s",
		e.Symbol, e.SignalType, e.Direction.Label(), e.Strength,
		e.Timestamp.Format(time.RFC3339))
}

var _ Event = (*SignalEvent)(nil)
