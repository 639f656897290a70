package event

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewFillEventDefaults(t *testing.T) {
	e, err := NewFillEvent("TEST", d("10"), d("99.4"), -1)
	require.NoError(t, err)
	require.True(t, e.Commission.Equal(decimal.Zero))
	require.Nil(t, e.Slippage)
	require.Empty(t, e.Exchange)
	require.Equal(t, KindFill, e.Kind())
}

func TestNewFillEventRejectsBadDirectionType(t *testing.T) {
	_, err := NewFillEvent("TEST", d("10"), d("99.4"), []int{1})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDirectionType)
}

func TestFillEventOptions(t *testing.T) {
	e, err := NewFillEvent("TEST", d("10"), d("99.4"), SideSell,
		WithFillCommission(d("0.25")),
		WithFillExchange("SIM"),
		WithFillSlippage(d("0.1")))
	require.NoError(t, err)

	require.Equal(t, DirectionShort, e.Direction)
	require.True(t, e.Commission.Equal(d("0.25")))
	require.Equal(t, "SIM", e.Exchange)
	require.NotNil(t, e.Slippage)
	require.True(t, e.Slippage.Equal(d("0.1")))
}

// 订单到成交的关联走 OrderID 与方向字段，不由本包跟踪
func TestOrderFillRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	order, err := NewOrderEvent("TEST", OrderTypeLimit, d("10"), 1,
		WithOrderTimestamp(ts), WithOrderPrice(d("99.5")))
	require.NoError(t, err)
	order.OrderID = "ORD-42"

	fill, err := NewFillEvent("TEST", d("10"), d("99.4"), 1,
		WithFillTimestamp(ts.Add(150*time.Millisecond)),
		WithFillOrderID(order.OrderID))
	require.NoError(t, err)

	require.Equal(t, order.Direction, fill.Direction)
	require.Equal(t, order.OrderID, fill.OrderID)
	require.True(t, fill.Timestamp.After(order.Timestamp))
}

func TestFillEventString(t *testing.T) {
	e, err := NewFillEvent("TEST", d("10"), d("99.4"), -1,
		WithFillOrderID("ORD-42"), WithFillExchange("SIM"))
	require.NoError(t, err)

	s := e.String()
	require.Contains(t, s, "FILL")
	require.Contains(t, s, "short")
	require.Contains(t, s, "ORD-42")
	require.Contains(t, s, "SIM")
}

func TestFillEventAdditionalDataIndependence(t *testing.T) {
	a, err := NewFillEvent("TEST", d("1"), d("1"), 1)
	require.NoError(t, err)
	b, err := NewFillEvent("TEST", d("1"), d("1"), 1)
	require.NoError(t, err)

	a.AdditionalData["liquidity"] = "taker"
	require.Empty(t, b.AdditionalData)
}

// 四个变体都满足统一接口，可按 Kind 分发
func TestEventKindDispatch(t *testing.T) {
	order, err := NewOrderEvent("TEST", OrderTypeMarket, d("1"), 1)
	require.NoError(t, err)
	fill, err := NewFillEvent("TEST", d("1"), d("1"), 1)
	require.NoError(t, err)

	events := []Event{
		NewMarketEvent("TEST", d("1"), d("1"), d("1"), d("1"), 0),
		NewSignalEvent("TEST", "LONG", DirectionLong),
		order,
		fill,
	}

	kinds := make([]Kind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind())
	}
	require.Equal(t, []Kind{KindMarket, KindSignal, KindOrder, KindFill}, kinds)
}
