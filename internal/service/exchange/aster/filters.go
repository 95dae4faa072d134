package aster

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/kynora/aster-agent/internal/service/exchange/precision"
	"github.com/samber/lo"
)

var _ precision.FilterSource = (*FilterService)(nil)

// FilterService 从交易所元数据提取交易规则，实现 precision.FilterSource
type FilterService struct {
	cli *futures.Client
}

func NewFilterService(cli *futures.Client) *FilterService {
	return &FilterService{
		cli: cli,
	}
}

// SymbolFilters 拉取 exchangeInfo 并提取指定交易对的数量步长
func (svc *FilterService) SymbolFilters(ctx context.Context, symbol string) (precision.SymbolFilters, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return precision.SymbolFilters{}, fmt.Errorf("fetch exchange info failed: %w", err)
	}

	s, ok := lo.Find(info.Symbols, func(item futures.Symbol) bool {
		return item.Symbol == symbol
	})
	if !ok {
		return precision.SymbolFilters{}, fmt.Errorf("symbol %s not found in exchange info", symbol)
	}

	filters := precision.SymbolFilters{
		Symbol: symbol,
	}
	if f := s.MarketLotSizeFilter(); f != nil {
		filters.MarketLotStep = f.StepSize
	}
	if f := s.LotSizeFilter(); f != nil {
		filters.LotStep = f.StepSize
	}
	return filters, nil
}
