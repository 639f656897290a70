package event

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FillEvent 成交确认事件，由执行端产生，
// 通过 OrderID 关联回原始的 OrderEvent。
type FillEvent struct {
	// 交易对符号
	Symbol string `json:"symbol"`
	// 事件时间戳
	Timestamp time.Time `json:"timestamp"`
	// 成交数量
	Quantity decimal.Decimal `json:"quantity"`
	// 成交方向，经 DirectionOf 归一化
	Direction Direction `json:"direction"`
	// 成交价
	FillPrice decimal.Decimal `json:"fill_price"`
	// 手续费，默认为零
	Commission decimal.Decimal `json:"commission"`
	// 关联的订单 ID
	OrderID string `json:"order_id,omitempty"`
	// 成交场所
	Exchange string `json:"exchange,omitempty"`
	// 滑点，未指定时为 nil
	Slippage *decimal.Decimal `json:"slippage,omitempty"`
	// 扩展字段，每个实例独立持有
	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

// FillOption FillEvent 的可选构造参数
type FillOption func(*FillEvent)

// WithFillTimestamp 显式指定时间戳，原样保留。零值视为未指定。
func WithFillTimestamp(ts time.Time) FillOption {
	return func(e *FillEvent) { e.Timestamp = ts }
}

// WithFillCommission 指定手续费
func WithFillCommission(commission decimal.Decimal) FillOption {
	return func(e *FillEvent) { e.Commission = commission }
}

// WithFillOrderID 关联原始订单 ID
func WithFillOrderID(orderID string) FillOption {
	return func(e *FillEvent) { e.OrderID = orderID }
}

// WithFillExchange 指定成交场所
func WithFillExchange(exchange string) FillOption {
	return func(e *FillEvent) { e.Exchange = exchange }
}

// WithFillSlippage 指定滑点
func WithFillSlippage(slippage decimal.Decimal) FillOption {
	return func(e *FillEvent) { e.Slippage = &slippage }
}

// WithFillData 附加扩展字段，内容会被复制
func WithFillData(data map[string]any) FillOption {
	return func(e *FillEvent) { e.AdditionalData = cloneData(data) }
}

// NewFillEvent 创建成交确认事件。
// direction 的归一化规则与 NewOrderEvent 一致，也是唯一的构造期校验。
func NewFillEvent(symbol string, quantity, fillPrice decimal.Decimal, direction any, opts ...FillOption) (*FillEvent, error) {
	dir, err := DirectionOf(direction)
	if err != nil {
		return nil, fmt.Errorf("new fill event: %w", err)
	}

	e := &FillEvent{
		Symbol:         symbol,
		Quantity:       quantity,
		Direction:      dir,
		FillPrice:      fillPrice,
		Commission:     decimal.Zero,
		AdditionalData: make(map[string]any),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Timestamp = timestampOrNow(e.Timestamp)
	return e, nil
}

// Side 返回方向的枚举影子，仅 ±1 可映射
func (e *FillEvent) Side() (Side, bool) { return e.Direction.Side() }

func (e *FillEvent) Kind() Kind            { return KindFill }
func (e *FillEvent) OccurredAt() time.Time { return e.Timestamp }

func (e *FillEvent) String() string {
	s := fmt.Sprintf("FILL %s %s qty=%s px=%s fee=%s",
		e.Symbol, e.Direction.Label(), e.Quantity, e.FillPrice, e.Commission)
	if e.OrderID != "" {
		s += " order=" + e.OrderID
	}
	if e.Exchange != "" {
		s += " venue=" + e.Exchange
	}
	return s + " @ " + e.Timestamp.Format(time.RFC3339)
}

var _ Event = (*FillEvent)(nil)
