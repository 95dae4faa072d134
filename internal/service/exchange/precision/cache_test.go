package precision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	_, ok := c.Get("BTCUSDT")
	assert.False(t, ok)

	require.NoError(t, c.Set("BTCUSDT", 3))
	p, ok := c.Get("BTCUSDT")
	assert.True(t, ok)
	assert.Equal(t, 3, p)

	// 覆盖写
	require.NoError(t, c.Set("BTCUSDT", 1))
	p, _ = c.Get("BTCUSDT")
	assert.Equal(t, 1, p)
}

// TestFileCachePersistence 写入后重新加载仍然可见
func TestFileCachePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precision.json")

	c, err := NewFileCache(path)
	require.NoError(t, err)

	_, ok := c.Get("ASTERUSDT")
	assert.False(t, ok)

	require.NoError(t, c.Set("ASTERUSDT", 2))
	require.NoError(t, c.Set("DOGEUSDT", 0))

	// 模拟进程重启
	reloaded, err := NewFileCache(path)
	require.NoError(t, err)

	p, ok := reloaded.Get("ASTERUSDT")
	assert.True(t, ok)
	assert.Equal(t, 2, p)

	p, ok = reloaded.Get("DOGEUSDT")
	assert.True(t, ok)
	assert.Equal(t, 0, p)
}

// TestFileCacheCorrupt 损坏的缓存文件直接报错而不是静默清空
func TestFileCacheCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precision.json")
	writeFile(t, path, "{not json")

	_, err := NewFileCache(path)
	assert.Error(t, err)
}
