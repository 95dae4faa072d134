package aster

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/kynora/aster-agent/internal/service/exchange"
	"github.com/samber/lo"
)

var _ exchange.PositionService = (*PositionService)(nil)

// PositionService 持仓查询
type PositionService struct {
	cli *futures.Client
}

func NewPositionService(cli *futures.Client) *PositionService {
	return &PositionService{
		cli: cli,
	}
}

// GetPositions 返回所有非零持仓
func (svc *PositionService) GetPositions(ctx context.Context) ([]exchange.Position, error) {
	risks, err := svc.cli.NewGetPositionRiskService().Do(ctx)
	if err != nil {
		return nil, err
	}
	positions := lo.FilterMap(risks, func(item *futures.PositionRisk, index int) (exchange.Position, bool) {
		pos := svc.parsePosition(item)
		return pos, !pos.Quantity.IsZero()
	})
	return positions, nil
}

func (svc *PositionService) GetPosition(ctx context.Context, symbol string) (exchange.Position, error) {
	risks, err := svc.cli.NewGetPositionRiskService().Symbol(symbol).Do(ctx)
	if err != nil {
		return exchange.Position{}, err
	}
	for _, item := range risks {
		pos := svc.parsePosition(item)
		if !pos.Quantity.IsZero() {
			return pos, nil
		}
	}
	return exchange.Position{}, fmt.Errorf("no open position for %s", symbol)
}

func (svc *PositionService) parsePosition(item *futures.PositionRisk) exchange.Position {
	amt := parseDecimal(item.PositionAmt)
	side := fromAsterPositionSide(item.PositionSide)
	if item.PositionSide == "BOTH" {
		// 单向持仓模式下用数量符号判断方向
		if amt.Sign() < 0 {
			side = exchange.PositionSideShort
		} else {
			side = exchange.PositionSideLong
		}
	}
	leverage, _ := strconv.Atoi(item.Leverage)
	return exchange.Position{
		Symbol:        item.Symbol,
		PositionSide:  side,
		Quantity:      amt.Abs(),
		EntryPrice:    parseDecimal(item.EntryPrice),
		MarkPrice:     parseDecimal(item.MarkPrice),
		UnrealizedPnl: parseDecimal(item.UnRealizedProfit),
		Leverage:      leverage,
	}
}
