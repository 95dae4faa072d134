package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

type PositionSide string

const (
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"
)

// Position 当前持仓快照
type Position struct {
	Symbol        string
	PositionSide  PositionSide
	Quantity      decimal.Decimal // 持仓数量，恒为正
	EntryPrice    decimal.Decimal
	MarkPrice     decimal.Decimal
	UnrealizedPnl decimal.Decimal
	Leverage      int
}

type PositionService interface {
	GetPositions(ctx context.Context) ([]Position, error)
	GetPosition(ctx context.Context, symbol string) (Position, error)
}
