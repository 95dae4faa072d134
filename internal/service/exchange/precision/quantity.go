package precision

import (
	"math"

	"github.com/shopspring/decimal"
)

// MinQuantity 数量下限，避免舍入后返回零或负数
const MinQuantity = 1e-8

// StepPrecision 由步长推导小数位数: max(0, round(-log10(step)))
func StepPrecision(step float64) int {
	if step <= 0 {
		return 0
	}
	p := int(math.Round(-math.Log10(step)))
	if p < 0 {
		return 0
	}
	return p
}

// FloorToStep 把数量向下取整到步长的整数倍
// 结果保证 <= qty 且在推导精度上是步长的精确倍数
// stepSize <= 0 或非法时视为未启用限制，原样返回
func FloorToStep(qty float64, stepSize string) float64 {
	step, err := decimal.NewFromString(stepSize)
	if err != nil || step.Sign() <= 0 {
		return qty
	}
	prec := StepPrecision(step.InexactFloat64())
	// 用 decimal 消除二进制浮点残留
	return decimal.NewFromFloat(qty).
		Div(step).Floor().Mul(step).
		Round(int32(prec)).
		InexactFloat64()
}

// ceilToStep 向上取整到步长的整数倍，只在名义价值抬升时使用
func ceilToStep(qty float64, stepSize string) float64 {
	step, err := decimal.NewFromString(stepSize)
	if err != nil || step.Sign() <= 0 {
		return qty
	}
	prec := StepPrecision(step.InexactFloat64())
	return decimal.NewFromFloat(qty).
		Div(step).Ceil().Mul(step).
		Round(int32(prec)).
		InexactFloat64()
}

// EnsureMinNotional 保证 qty*price 不低于最小名义价值
// 名义价值不足（含恰好压线的情况）时抬升到满足下限的最小步长倍数，
// 这是唯一允许数量变大的路径
// minNotional <= 0 时视为未启用限制
func EnsureMinNotional(qty, price float64, minNotional, stepSize string) float64 {
	minN, err := decimal.NewFromString(minNotional)
	if err != nil || minN.Sign() <= 0 || price <= 0 {
		return qty
	}
	notional := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(price))
	if notional.GreaterThan(minN) {
		return qty
	}
	minQty := minN.Div(decimal.NewFromFloat(price)).InexactFloat64()
	return ceilToStep(minQty, stepSize)
}

// QtyFromNotional 由目标名义价值和价格推导交易所可接受的下单数量
// price <= 0 时返回 0
func QtyFromNotional(notional, price float64, stepSize, minNotional string) float64 {
	if price <= 0 {
		return 0
	}
	qty := notional / price
	qty = EnsureMinNotional(qty, price, minNotional, stepSize)
	qty = FloorToStep(qty, stepSize)
	if qty < MinQuantity {
		return MinQuantity
	}
	return qty
}
