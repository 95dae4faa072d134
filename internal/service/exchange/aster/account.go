package aster

import (
	"context"
	"log/slog"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/kynora/aster-agent/internal/service/exchange"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var _ exchange.AccountService = (*AccountService)(nil)

// AccountService 账户余额查询
type AccountService struct {
	cli *futures.Client
}

func NewAccountService(cli *futures.Client) *AccountService {
	return &AccountService{
		cli: cli,
	}
}

func (svc *AccountService) GetAccountInfo(ctx context.Context) (exchange.AccountInfo, error) {
	acc, err := svc.cli.NewGetAccountService().Do(ctx)
	if err != nil {
		return exchange.AccountInfo{}, err
	}

	balances := lo.FilterMap(acc.Assets, func(item *futures.AccountAsset, index int) (exchange.Balance, bool) {
		total := parseDecimal(item.WalletBalance)
		if total.IsZero() {
			return exchange.Balance{}, false
		}
		return exchange.Balance{
			Asset:     item.Asset,
			Total:     total,
			Available: parseDecimal(item.AvailableBalance),
		}, true
	})

	return exchange.AccountInfo{
		TotalWalletBalance: parseDecimal(acc.TotalWalletBalance),
		TotalUnrealizedPnl: parseDecimal(acc.TotalUnrealizedProfit),
		AvailableBalance:   parseDecimal(acc.AvailableBalance),
		Balances:           balances,
	}, nil
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		slog.Error("fail to parse decimal", "value", s, "error", err)
		return decimal.Zero
	}
	return d
}
