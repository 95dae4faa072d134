package precision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// SymbolFilters 单个交易对的下单过滤器快照，来自交易所实时元数据
type SymbolFilters struct {
	Symbol        string
	MarketLotStep string // MARKET_LOT_SIZE 的 stepSize
	LotStep       string // LOT_SIZE 的 stepSize
}

// FilterSource 实时交易规则来源，由交易所适配器实现
type FilterSource interface {
	SymbolFilters(ctx context.Context, symbol string) (SymbolFilters, error)
}

const (
	// maxPrecision 数量精度上限，交易所不会超过 4 位小数
	maxPrecision = 4
	// detectDefault 实时元数据缺失时的默认精度
	detectDefault = 3
)

func clampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > maxPrecision {
		return maxPrecision
	}
	return p
}

// Resolver 精度解析器
// 解析顺序: 已学习缓存 -> 内置表 -> 子串启发式 -> 默认值
type Resolver struct {
	cache Cache
}

func NewResolver(cache Cache) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Resolver{cache: cache}
}

// GetPrecision 解析交易对应使用的数量精度
func (r *Resolver) GetPrecision(symbol string) int {
	symbol = strings.ToUpper(symbol)
	if p, ok := r.cache.Get(symbol); ok {
		return clampPrecision(p)
	}
	if entry, ok := Lookup(symbol); ok {
		return clampPrecision(entry.Precision)
	}
	return clampPrecision(FallbackPrecision(symbol))
}

// SetPrecision 记录确认可用的精度并立即持久化
// 持久化失败只记日志，内存中的值在进程生命周期内仍然有效
func (r *Resolver) SetPrecision(symbol string, precision int) {
	symbol = strings.ToUpper(symbol)
	if err := r.cache.Set(symbol, clampPrecision(precision)); err != nil {
		slog.Error("fail to persist learned precision",
			"symbol", symbol, "precision", precision, "error", err)
	}
}

// DetectFromFilters 从实时交易规则推导精度并写回缓存
// 优先 MARKET_LOT_SIZE，其次 LOT_SIZE，推导公式与 FloorToStep 保持一致
// 交易对或步长缺失时返回默认值，不写缓存
func (r *Resolver) DetectFromFilters(ctx context.Context, src FilterSource, symbol string) int {
	p, err := r.detectFromFilters(ctx, src, symbol)
	if err != nil {
		slog.Warn("fail to detect precision from filters", "symbol", symbol, "error", err)
		return detectDefault
	}
	return p
}

func (r *Resolver) detectFromFilters(ctx context.Context, src FilterSource, symbol string) (int, error) {
	symbol = strings.ToUpper(symbol)
	filters, err := src.SymbolFilters(ctx, symbol)
	if err != nil {
		return 0, err
	}

	step := filters.MarketLotStep
	if step == "" {
		step = filters.LotStep
	}
	if step == "" {
		return 0, fmt.Errorf("no lot size step for %s", symbol)
	}

	d, err := decimal.NewFromString(step)
	if err != nil || d.Sign() <= 0 {
		return 0, fmt.Errorf("invalid step size %q for %s", step, symbol)
	}

	p := clampPrecision(StepPrecision(d.InexactFloat64()))
	r.SetPrecision(symbol, p)
	return p, nil
}
