package precision

import (
	"strings"

	"github.com/kynora/aster-agent/pkg/decimalx"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SymbolEntry 交易对的数量精度元数据
type SymbolEntry struct {
	Symbol    string
	StepSize  string // 最小数量步长
	Precision int    // stepSize 隐含的小数位数
	MinQty    string
	MaxQty    string
}

// StepDecimal 步长的 decimal 形式，表内数据非法时 panic
func (e SymbolEntry) StepDecimal() decimal.Decimal {
	return decimalx.MustFromString(e.StepSize)
}

// QtyRange 数量上下界
func (e SymbolEntry) QtyRange() (min, max decimal.Decimal) {
	return decimalx.MustFromString(e.MinQty), decimalx.MustFromString(e.MaxQty)
}

// 常见交易对的精度配置，编译期内置，运行时只读
// 参考: https://www.asterdex.com/en/trade-rule
var knownSymbols = []SymbolEntry{
	{Symbol: "BTCUSDT", StepSize: "0.001", Precision: 3, MinQty: "0.001", MaxQty: "1000"},
	{Symbol: "ETHUSDT", StepSize: "0.001", Precision: 3, MinQty: "0.001", MaxQty: "10000"},
	{Symbol: "BNBUSDT", StepSize: "0.01", Precision: 2, MinQty: "0.01", MaxQty: "100000"},
	{Symbol: "SOLUSDT", StepSize: "0.01", Precision: 2, MinQty: "0.01", MaxQty: "100000"},
	{Symbol: "ASTERUSDT", StepSize: "0.01", Precision: 2, MinQty: "0.01", MaxQty: "10000000"},
	{Symbol: "XRPUSDT", StepSize: "0.1", Precision: 1, MinQty: "0.1", MaxQty: "1000000"},
	{Symbol: "DOGEUSDT", StepSize: "1", Precision: 0, MinQty: "1", MaxQty: "10000000"},
	{Symbol: "ADAUSDT", StepSize: "1", Precision: 0, MinQty: "1", MaxQty: "10000000"},
	{Symbol: "AVAXUSDT", StepSize: "1", Precision: 0, MinQty: "1", MaxQty: "1000000"},
}

var symbolIndex = lo.SliceToMap(knownSymbols, func(e SymbolEntry) (string, SymbolEntry) {
	return e.Symbol, e
})

// Lookup 查询内置精度表，符号大小写不敏感
func Lookup(symbol string) (SymbolEntry, bool) {
	entry, ok := symbolIndex[strings.ToUpper(symbol)]
	return entry, ok
}

// fallbackRule 子串启发式规则，顺序即优先级，命中即返回
type fallbackRule struct {
	bases     []string
	precision int
}

// 启发式规则表，只在 Lookup 未命中时使用
// 对未收录币种只是猜测，不保证正确
var fallbackRules = []fallbackRule{
	{bases: []string{"BTC", "ETH"}, precision: 3},
	{bases: []string{"ASTER", "SOL", "BNB"}, precision: 2},
	{bases: []string{"XRP"}, precision: 1},
	{bases: []string{"ADA", "DOGE", "AVAX"}, precision: 0},
}

// DefaultPrecision 未命中任何规则时的默认精度
const DefaultPrecision = 2

// FallbackPrecision 根据子串启发式推断未知交易对的精度
func FallbackPrecision(symbol string) int {
	upper := strings.ToUpper(symbol)
	for _, rule := range fallbackRules {
		for _, base := range rule.bases {
			if strings.Contains(upper, base) {
				return rule.precision
			}
		}
	}
	return DefaultPrecision
}
