package precision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLookup 测试内置精度表查询
func TestLookup(t *testing.T) {
	entry, ok := Lookup("DOGEUSDT")
	assert.True(t, ok)
	assert.Equal(t, 0, entry.Precision)
	assert.Equal(t, "1", entry.StepSize)

	entry, ok = Lookup("BTCUSDT")
	assert.True(t, ok)
	assert.Equal(t, 3, entry.Precision)
	assert.Equal(t, "0.001", entry.StepSize)

	_, ok = Lookup("PEPEUSDT")
	assert.False(t, ok)
}

// TestLookupCaseInsensitive 查询大小写不敏感
func TestLookupCaseInsensitive(t *testing.T) {
	upper, ok := Lookup("ETHUSDT")
	assert.True(t, ok)

	lower, ok2 := Lookup("ethusdt")
	assert.True(t, ok2)
	assert.Equal(t, upper, lower)
}

// TestLookupNormalize 表中数量按步长规整
func TestLookupNormalize(t *testing.T) {
	entry, ok := Lookup("DOGEUSDT")
	assert.True(t, ok)
	assert.Equal(t, float64(7), FloorToStep(7.8, entry.StepSize))
}

// TestKnownSymbolsConsistent 内置表的步长与精度自洽且可解析
func TestKnownSymbolsConsistent(t *testing.T) {
	for _, entry := range knownSymbols {
		step := entry.StepDecimal()
		assert.True(t, step.IsPositive(), entry.Symbol)
		assert.Equal(t, entry.Precision, StepPrecision(step.InexactFloat64()), entry.Symbol)

		min, max := entry.QtyRange()
		assert.True(t, min.IsPositive(), entry.Symbol)
		assert.True(t, max.GreaterThan(min), entry.Symbol)
	}
}

// TestFallbackPrecision 测试子串启发式的规则与优先级
func TestFallbackPrecision(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   int
	}{
		{
			name:   "BTC 类",
			symbol: "BTCDOMUSDT",
			want:   3,
		},
		{
			name:   "ETH 类",
			symbol: "ETHFIUSD",
			want:   3,
		},
		{
			name:   "ASTER 类",
			symbol: "ASTERUSDC",
			want:   2,
		},
		{
			name:   "SOL 类",
			symbol: "SOLAYERUSDT",
			want:   2,
		},
		{
			name:   "XRP 类",
			symbol: "XRPUSDC",
			want:   1,
		},
		{
			name:   "DOGE 类",
			symbol: "DOGEUSDC",
			want:   0,
		},
		{
			name:   "同时含 SOL 和 BTC 时 BTC 规则优先",
			symbol: "SOLBTC",
			want:   3,
		},
		{
			name:   "未命中时使用默认精度",
			symbol: "PEPEUSDT",
			want:   DefaultPrecision,
		},
		{
			name:   "小写符号同样生效",
			symbol: "avaxusdt",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackPrecision(tt.symbol))
		})
	}
}
