package precision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFilterSource struct {
	mock.Mock
}

func (m *MockFilterSource) SymbolFilters(ctx context.Context, symbol string) (SymbolFilters, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(SymbolFilters), args.Error(1)
}

// failingCache 只写内存但持久化永远失败
type failingCache struct {
	m map[string]int
}

func (c *failingCache) Get(symbol string) (int, bool) {
	p, ok := c.m[symbol]
	return p, ok
}

func (c *failingCache) Set(symbol string, precision int) error {
	return errors.New("disk full")
}

// TestResolverChain 测试缓存 -> 内置表 -> 启发式 -> 默认 的解析顺序
func TestResolverChain(t *testing.T) {
	cache := NewMemoryCache()
	r := NewResolver(cache)

	// 内置表命中
	assert.Equal(t, 3, r.GetPrecision("BTCUSDT"))
	assert.Equal(t, 0, r.GetPrecision("DOGEUSDT"))

	// 缓存优先于内置表
	r.SetPrecision("BTCUSDT", 1)
	assert.Equal(t, 1, r.GetPrecision("BTCUSDT"))

	// 未收录币种走启发式
	assert.Equal(t, 1, r.GetPrecision("XRPUSDC"))

	// 启发式也未命中时使用默认值
	assert.Equal(t, DefaultPrecision, r.GetPrecision("PEPEUSDT"))

	// 大小写不敏感
	assert.Equal(t, 1, r.GetPrecision("btcusdt"))
}

// TestResolverClamp 精度永远被钳制在 [0, 4]
func TestResolverClamp(t *testing.T) {
	cache := NewMemoryCache()
	r := NewResolver(cache)

	r.SetPrecision("BTCUSDT", 9)
	assert.Equal(t, 4, r.GetPrecision("BTCUSDT"))

	r.SetPrecision("BTCUSDT", -2)
	assert.Equal(t, 0, r.GetPrecision("BTCUSDT"))
}

// TestSetPrecisionPersistFailure 持久化失败不影响调用方
func TestSetPrecisionPersistFailure(t *testing.T) {
	r := NewResolver(&failingCache{m: map[string]int{}})

	assert.NotPanics(t, func() {
		r.SetPrecision("BTCUSDT", 2)
	})
	// 落库失败后仍然按链路解析
	assert.Equal(t, 3, r.GetPrecision("BTCUSDT"))
}

// TestDetectFromFilters 测试实时元数据精度探测
func TestDetectFromFilters(t *testing.T) {
	ctx := context.Background()

	t.Run("优先使用 MARKET_LOT_SIZE", func(t *testing.T) {
		r := NewResolver(NewMemoryCache())
		src := new(MockFilterSource)
		src.On("SymbolFilters", ctx, "PEPEUSDT").Return(SymbolFilters{
			Symbol:        "PEPEUSDT",
			MarketLotStep: "0.1",
			LotStep:       "0.001",
		}, nil)

		assert.Equal(t, 1, r.DetectFromFilters(ctx, src, "PEPEUSDT"))
		// 探测成功后写回缓存
		assert.Equal(t, 1, r.GetPrecision("PEPEUSDT"))
	})

	t.Run("缺失 MARKET_LOT_SIZE 时回退 LOT_SIZE", func(t *testing.T) {
		r := NewResolver(NewMemoryCache())
		src := new(MockFilterSource)
		src.On("SymbolFilters", ctx, "PEPEUSDT").Return(SymbolFilters{
			Symbol:  "PEPEUSDT",
			LotStep: "0.001",
		}, nil)

		assert.Equal(t, 3, r.DetectFromFilters(ctx, src, "PEPEUSDT"))
	})

	t.Run("步长全部缺失时返回默认值且不写缓存", func(t *testing.T) {
		r := NewResolver(NewMemoryCache())
		src := new(MockFilterSource)
		src.On("SymbolFilters", ctx, "PEPEUSDT").Return(SymbolFilters{
			Symbol: "PEPEUSDT",
		}, nil)

		assert.Equal(t, detectDefault, r.DetectFromFilters(ctx, src, "PEPEUSDT"))
		// 缓存未写入，解析仍走默认链路
		assert.Equal(t, DefaultPrecision, r.GetPrecision("PEPEUSDT"))
	})

	t.Run("拉取失败时返回默认值", func(t *testing.T) {
		r := NewResolver(NewMemoryCache())
		src := new(MockFilterSource)
		src.On("SymbolFilters", ctx, "PEPEUSDT").Return(SymbolFilters{}, errors.New("timeout"))

		assert.Equal(t, detectDefault, r.DetectFromFilters(ctx, src, "PEPEUSDT"))
	})
}
