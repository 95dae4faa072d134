package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

// Balance 单一资产余额
type Balance struct {
	Asset     string
	Total     decimal.Decimal
	Available decimal.Decimal
}

type AccountInfo struct {
	TotalWalletBalance decimal.Decimal // 钱包总余额
	TotalUnrealizedPnl decimal.Decimal
	AvailableBalance   decimal.Decimal
	Balances           []Balance
}

type AccountService interface {
	GetAccountInfo(ctx context.Context) (AccountInfo, error)
}
