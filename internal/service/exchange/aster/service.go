package aster

import (
	"github.com/adshao/go-binance/v2/futures"
)

// Aster 合约接口与币安 USDⓈ-M futures 接口兼容，直接复用其客户端
// https://github.com/asterdex/api-docs/blob/master/aster-finance-futures-api.md
const BaseURL = "https://fapi.asterdex.com"

// NewClient 创建指向 Aster 的合约客户端
func NewClient(apiKey, apiSecret string) *futures.Client {
	cli := futures.NewClient(apiKey, apiSecret)
	cli.BaseURL = BaseURL
	return cli
}
