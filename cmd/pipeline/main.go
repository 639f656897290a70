// 事件词汇表的使用示例：把一组固定的 K 线依次走过
// 行情 → 信号 → 订单 → 成交 四个阶段，并以结构化日志输出每个事件。
// 本程序只演示构造与渲染契约，不是模拟器，也不做调度。
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/qte/pkg/config"
	"github.com/wyfcoding/qte/pkg/event"
	"github.com/wyfcoding/qte/pkg/logger"
)

var configPath = flag.String("config", "configs/pipeline/config.toml", "config file path")

type bar struct {
	open, high, low, close string
	volume                 int64
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	ctx := context.Background()
	logger.Info(ctx, "pipeline example started", "service", cfg.ServiceName, "env", cfg.Environment)

	const symbol = "BTC/USD"
	bars := []bar{
		{"42000", "42350", "41900", "42300", 1532},
		{"42300", "42410", "42120", "42150", 987},
		{"42150", "42800", "42100", "42760", 2411},
	}

	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	for _, b := range bars {
		mkt := event.NewMarketEvent(symbol,
			decimal.RequireFromString(b.open),
			decimal.RequireFromString(b.high),
			decimal.RequireFromString(b.low),
			decimal.RequireFromString(b.close),
			b.volume,
			event.WithMarketTimestamp(ts))
		logger.Event(ctx, mkt)

		sig := signalFor(mkt)
		logger.Event(ctx, sig, "strength", sig.Strength)

		if sig.Direction == event.DirectionFlat {
			ts = ts.Add(time.Minute)
			continue
		}

		order, err := event.NewOrderEvent(symbol, event.OrderTypeMarket, decimal.NewFromInt(1), sig.Direction,
			event.WithOrderTimestamp(sig.Timestamp))
		if err != nil {
			logger.Error(ctx, "failed to build order", "error", err)
			continue
		}

		// 订单 ID 由执行端事后指派
		order.OrderID = uuid.NewString()
		logger.Event(ctx, order)

		fill, err := event.NewFillEvent(symbol, order.Quantity, mkt.Close, order.Direction,
			event.WithFillTimestamp(order.Timestamp.Add(150*time.Millisecond)),
			event.WithFillOrderID(order.OrderID),
			event.WithFillExchange("SIM"),
			event.WithFillCommission(decimal.RequireFromString("0.05")))
		if err != nil {
			logger.Error(ctx, "failed to build fill", "error", err)
			continue
		}
		logger.Event(ctx, fill, "order_id", fill.OrderID)

		ts = ts.Add(time.Minute)
	}

	logger.Info(ctx, "pipeline example finished")
}

// signalFor 用收盘与开盘的相对位置给出示例信号，仅用于演示构造用法
func signalFor(mkt *event.MarketEvent) *event.SignalEvent {
	switch {
	case mkt.Close.GreaterThan(mkt.Open):
		return event.NewSignalEvent(mkt.Symbol, "LONG", event.DirectionLong,
			event.WithSignalTimestamp(mkt.Timestamp), event.WithSignalStrength(0.8))
	case mkt.Close.LessThan(mkt.Open):
		return event.NewSignalEvent(mkt.Symbol, "SHORT", event.DirectionShort,
			event.WithSignalTimestamp(mkt.Timestamp), event.WithSignalStrength(0.8))
	default:
		return event.NewSignalEvent(mkt.Symbol, "EXIT", event.DirectionFlat,
			event.WithSignalTimestamp(mkt.Timestamp))
	}
}
