package event

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderType 订单类型标签。
// 已知四种代码之外的字符串同样原样接受，不做校验：
// 订单类型在当前设计下是按约定开放的集合，不是封闭枚举。
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStop      OrderType = "STOP"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// OrderEvent 订单请求事件。
// OrderID 由执行端（券商/撮合）在事后指派，构造时可以留空。
type OrderEvent struct {
	// 交易对符号
	Symbol string `json:"symbol"`
	// 事件时间戳
	Timestamp time.Time `json:"timestamp"`
	// 订单类型
	Type OrderType `json:"order_type"`
	// 委托数量
	Quantity decimal.Decimal `json:"quantity"`
	// 订单方向，经 DirectionOf 归一化
	Direction Direction `json:"direction"`
	// 委托价，LIMIT/STOP 类订单实务上必填，市价单为零值
	Price decimal.Decimal `json:"price,omitempty"`
	// 订单 ID，允许构造后再绑定
	OrderID string `json:"order_id,omitempty"`
	// 扩展字段，每个实例独立持有
	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

// OrderOption OrderEvent 的可选构造参数
type OrderOption func(*OrderEvent)

// WithOrderTimestamp 显式指定时间戳，原样保留。零值视为未指定。
func WithOrderTimestamp(ts time.Time) OrderOption {
	return func(e *OrderEvent) { e.Timestamp = ts }
}

// WithOrderPrice 指定委托价
func WithOrderPrice(price decimal.Decimal) OrderOption {
	return func(e *OrderEvent) { e.Price = price }
}

// WithOrderID 构造时直接指定订单 ID
func WithOrderID(orderID string) OrderOption {
	return func(e *OrderEvent) { e.OrderID = orderID }
}

// WithOrderData 附加扩展字段，内容会被复制
func WithOrderData(data map[string]any) OrderOption {
	return func(e *OrderEvent) { e.AdditionalData = cloneData(data) }
}

// NewOrderEvent 创建订单请求事件。
// direction 接受规范整数表示或 Side 枚举（BUY→+1，SELL→-1），
// 其余动态类型返回错误，这是本包唯一的构造期校验。
// 价格、数量、符号等字段不做语义校验，由调用方负责。
func NewOrderEvent(symbol string, orderType OrderType, quantity decimal.Decimal, direction any, opts ...OrderOption) (*OrderEvent, error) {
	dir, err := DirectionOf(direction)
	if err != nil {
		return nil, fmt.Errorf("new order event: %w", err)
	}

	e := &OrderEvent{
		Symbol:         symbol,
		Type:           orderType,
		Quantity:       quantity,
		Direction:      dir,
		AdditionalData: make(map[string]any),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Timestamp = timestampOrNow(e.Timestamp)
	return e, nil
}

// Side 返回方向的枚举影子，仅 ±1 可映射
func (e *OrderEvent) Side() (Side, bool) { return e.Direction.Side() }

func (e *OrderEvent) Kind() Kind            { return KindOrder }
func (e *OrderEvent) OccurredAt() time.Time { return e.Timestamp }

func (e *OrderEvent) String() string {
	s := fmt.Sprintf("ORDER %s %s %s qty=%s", e.Symbol, e.Type, e.Direction.Label(), e.Quantity)
	if !e.Price.IsZero() {
		s += " px=" + e.Price.String()
	}
	if e.OrderID != "" {
		s += " id=" + e.OrderID
	}
	return s + " @ " + e.Timestamp.Format(time.RFC3339)
}

var _ Event = (*OrderEvent)(nil)
