package gherkinparam

import (
	"maps"
	"slices"
	"sync"
)

// Store 夹具存储，按 key 精确查找。
//
// 未找到时返回 (nil, false)；没有通配或前缀语义。
type Store interface {
	Get(key string) (any, bool)
}

// StoreFunc 将普通函数适配为 [Store]。
type StoreFunc func(key string) (any, bool)

// Get 实现 [Store]。
func (f StoreFunc) Get(key string) (any, bool) { return f(key) }

// Fixtures 并发安全的内存夹具存储。
//
// 步骤之间可通过 Set 共享数据，后续步骤用 {{key}} 读取。
type Fixtures struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewFixtures 以 initial 的浅拷贝创建夹具存储，initial 可为 nil。
func NewFixtures(initial map[string]any) *Fixtures {
	data := make(map[string]any, len(initial))
	maps.Copy(data, initial)

	return &Fixtures{data: data}
}

// Get 实现 [Store]。
func (f *Fixtures) Get(key string) (any, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.data[key]

	return v, ok
}

// Set 写入或覆盖一个夹具。
func (f *Fixtures) Set(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value
}

// Delete 删除一个夹具，不存在时无操作。
func (f *Fixtures) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.data, key)
}

// Merge 批量写入，同名 key 被覆盖。
func (f *Fixtures) Merge(values map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	maps.Copy(f.data, values)
}

// Reset 清空所有夹具。
func (f *Fixtures) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	clear(f.data)
}

// Keys 返回排序后的全部 key。
func (f *Fixtures) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Sorted(maps.Keys(f.data))
}

// emptyStore 没有任何夹具。
type emptyStore struct{}

func (emptyStore) Get(string) (any, bool) { return nil, false }
