package event

import (
	"errors"
	"fmt"
)

// Direction 交易方向的规范整数表示。
// +1 买入/做多，-1 卖出/做空，0 平仓/空仓（0 仅在信号语义下有定义）。
// 约定之外的整数不会被拒绝，原样保留，对应的枚举影子视为未设置。
type Direction int

const (
	DirectionLong  Direction = 1
	DirectionShort Direction = -1
	DirectionFlat  Direction = 0
)

// Side 两值买卖方向枚举
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ErrDirectionType 方向入参的动态类型不被支持
var ErrDirectionType = errors.New("direction must be an integer or event.Side")

// Direction 返回枚举对应的整数方向，BUY→+1，SELL→-1
func (s Side) Direction() Direction {
	if s == SideSell {
		return DirectionShort
	}
	return DirectionLong
}

// DirectionOf 是方向归一化的唯一入口：接受任意 Go 整数类别
//（含无符号）、规范的 Direction 表示或 Side 枚举，
// 其余动态类型返回带具体类型名的错误。整数值本身不做范围校验。
func DirectionOf(v any) (Direction, error) {
	switch d := v.(type) {
	case Direction:
		return d, nil
	case Side:
		switch d {
		case SideBuy, SideSell:
			return d.Direction(), nil
		}
		return 0, fmt.Errorf("%w: unknown side %q", ErrDirectionType, string(d))
	case int:
		return Direction(d), nil
	case int8:
		return Direction(d), nil
	case int16:
		return Direction(d), nil
	case int32:
		return Direction(d), nil
	case int64:
		return Direction(d), nil
	case uint:
		return Direction(d), nil
	case uint8:
		return Direction(d), nil
	case uint16:
		return Direction(d), nil
	case uint32:
		return Direction(d), nil
	case uint64:
		return Direction(d), nil
	case uintptr:
		return Direction(d), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrDirectionType, v)
	}
}

// Side 返回方向对应的枚举影子。仅 ±1 可以映射，其余取值 ok 为 false。
func (d Direction) Side() (Side, bool) {
	switch d {
	case DirectionLong:
		return SideBuy, true
	case DirectionShort:
		return SideSell, true
	}
	return "", false
}

// Label 返回方向的可读标签，用于摘要渲染
func (d Direction) Label() string {
	switch {
	case d > 0:
		return "long"
	case d < 0:
		return "short"
	default:
		return "flat"
	}
}
