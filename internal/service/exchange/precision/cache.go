package precision

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Cache 已学习精度的存取抽象
// 实现可以是内存、文件或数据库，核心逻辑不直接接触存储
type Cache interface {
	Get(symbol string) (int, bool)
	Set(symbol string, precision int) error
}

// MemoryCache 纯内存实现，进程退出即丢失
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		m: make(map[string]int),
	}
}

func (c *MemoryCache) Get(symbol string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.m[symbol]
	return p, ok
}

func (c *MemoryCache) Set(symbol string, precision int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[symbol] = precision
	return nil
}

// FileCache JSON 文件持久化的精度缓存
// 启动时读一次，每次写入整体覆盖文件
type FileCache struct {
	path string
	mu   sync.Mutex
	m    map[string]int
}

func NewFileCache(path string) (*FileCache, error) {
	c := &FileCache{
		path: path,
		m:    make(map[string]int),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("read precision cache %s: %w", path, err)
	}
	if err = json.Unmarshal(data, &c.m); err != nil {
		return nil, fmt.Errorf("parse precision cache %s: %w", path, err)
	}
	return c, nil
}

func (c *FileCache) Get(symbol string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.m[symbol]
	return p, ok
}

// Set 先写内存再落盘，落盘失败时内存值仍然有效
func (c *FileCache) Set(symbol string, precision int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[symbol] = precision
	data, err := json.Marshal(c.m)
	if err != nil {
		return err
	}
	if err = os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("persist precision cache %s: %w", c.path, err)
	}
	return nil
}
