package event

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MarketEvent 行情事件，对应一根价格 K 线。
// high ≥ low、volume ≥ 0 等语义约束由数据源负责，本类型不做校验。
type MarketEvent struct {
	// 交易对符号
	Symbol string `json:"symbol"`
	// 事件时间戳
	Timestamp time.Time `json:"timestamp"`
	// 开盘价
	Open decimal.Decimal `json:"open"`
	// 最高价
	High decimal.Decimal `json:"high"`
	// 最低价
	Low decimal.Decimal `json:"low"`
	// 收盘价
	Close decimal.Decimal `json:"close"`
	// 成交量
	Volume int64 `json:"volume"`
	// 扩展字段，每个实例独立持有
	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

// MarketOption MarketEvent 的可选构造参数
type MarketOption func(*MarketEvent)

// WithMarketTimestamp 显式指定时间戳，原样保留，不做时区转换。
// 零值 time.Time 视为未指定，构造时回落到当前 UTC 时间。
func WithMarketTimestamp(ts time.Time) MarketOption {
	return func(e *MarketEvent) { e.Timestamp = ts }
}

// WithMarketData 附加扩展字段，内容会被复制
func WithMarketData(data map[string]any) MarketOption {
	return func(e *MarketEvent) { e.AdditionalData = cloneData(data) }
}

// NewMarketEvent 创建行情事件。未指定时间戳时取当前 UTC 时间。
func NewMarketEvent(symbol string, open, high, low, close decimal.Decimal, volume int64, opts ...MarketOption) *MarketEvent {
	e := &MarketEvent{
		Symbol:         symbol,
		Open:           open,
		High:           high,
		Low:            low,
		Close:          close,
		Volume:         volume,
		AdditionalData: make(map[string]any),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Timestamp = timestampOrNow(e.Timestamp)
	return e
}

func (e *MarketEvent) Kind() Kind            { return KindMarket }
func (e *MarketEvent) OccurredAt() time.Time { return e.Timestamp }

func (e *MarketEvent) String() string {
	return fmt.Sprintf("MARKET %s O:%s H:%s L:%s C:%s V:%d @ %s",
		e.Symbol, e.Open, e.High, e.Low, e.Close, e.Volume,
		e.Timestamp.Format(time.RFC3339))
}

var _ Event = (*MarketEvent)(nil)
