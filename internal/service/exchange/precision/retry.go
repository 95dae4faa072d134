package precision

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/kynora/aster-agent/internal/service/exchange"
	"github.com/shopspring/decimal"
)

// SubmitFunc 单次订单提交，由交易所适配器提供
// 每次调用恰好发起一次外部提交
type SubmitFunc func(ctx context.Context, symbol string, side exchange.Side, quantity float64, reduceOnly bool) (exchange.OrderResult, error)

// Engine 精度重试引擎
// 数量精度被拒时从起始精度逐级降到 0 重试，成功后记住可用精度，
// 下次同一交易对直接从学到的精度开始
type Engine struct {
	resolver *Resolver
	filters  FilterSource // 可选，提供时在阶梯开始前做一次尽力而为的实时探测

	mu          sync.Mutex
	symbolLocks map[string]*sync.Mutex
}

func NewEngine(resolver *Resolver, filters FilterSource) *Engine {
	return &Engine{
		resolver:    resolver,
		filters:     filters,
		symbolLocks: make(map[string]*sync.Mutex),
	}
}

// ResolveQuantity 把期望数量规整为当前认知下交易所可接受的数量
func (e *Engine) ResolveQuantity(symbol string, desired float64) float64 {
	p := e.resolver.GetPrecision(symbol)
	return FloorToStep(desired, stepForPrecision(p))
}

// stepForPrecision 精度对应的步长字符串, 3 -> "0.001", 0 -> "1"
func stepForPrecision(p int) string {
	return decimal.New(1, int32(-p)).String()
}

// symbolLock 同一交易对的阶梯串行执行，避免学习写入互相覆盖
func (e *Engine) symbolLock(symbol string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.symbolLocks[symbol]
	if !ok {
		lock = &sync.Mutex{}
		e.symbolLocks[symbol] = lock
	}
	return lock
}

// SubmitWithRecovery 提交订单，精度超限时按精度阶梯降级重试
// 从起始精度 p0 到 0 最多提交 p0+1 次；其他错误原样返回，不做重试
func (e *Engine) SubmitWithRecovery(ctx context.Context, symbol string, side exchange.Side,
	quantity float64, reduceOnly bool, submit SubmitFunc) (exchange.OrderResult, error) {
	symbol = strings.ToUpper(symbol)
	lock := e.symbolLock(symbol)
	lock.Lock()
	defer lock.Unlock()

	p := e.resolver.GetPrecision(symbol)
	if e.filters != nil {
		// 尽力而为的实时探测，失败不影响阶梯
		if detected, err := e.resolver.detectFromFilters(ctx, e.filters, symbol); err == nil && detected != p {
			slog.Info("precision detected from live filters",
				"symbol", symbol, "resolved", p, "detected", detected)
			p = detected
		}
	}

	var lastErr error
	attempts := 0
	for {
		qty := FloorToStep(quantity, stepForPrecision(p))
		res, err := submit(ctx, symbol, side, qty, reduceOnly)
		attempts++
		if err == nil {
			e.resolver.SetPrecision(symbol, p)
			return res, nil
		}
		if !IsPrecisionExceeded(err) {
			return exchange.OrderResult{}, err
		}
		lastErr = err
		if p == 0 {
			return exchange.OrderResult{}, &LadderExhaustedError{
				Symbol:   symbol,
				Attempts: attempts,
				LastErr:  lastErr,
			}
		}
		slog.Warn("quantity precision rejected, retrying lower",
			"symbol", symbol, "precision", p, "quantity", qty)
		p--
	}
}
