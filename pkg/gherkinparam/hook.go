package gherkinparam

import (
	"log/slog"
	"sync/atomic"
)

// Hook 将解析器接入测试框架的生命周期事件。
//
// BeforeSuite 是唯一的写入方：每个套件开始时构造新的 [Resolver] 并原子发布，
// 上一个套件的配置在此之后不可见。BeforeStep 只读取当前快照。
type Hook struct {
	fixtures Store
	current  atomic.Pointer[Resolver]
}

// NewHook 创建 Hook，套件开始前使用空配置。
func NewHook(fixtures Store) *Hook {
	h := &Hook{fixtures: fixtures}
	h.current.Store(NewResolver(nil, fixtures))

	return h
}

// BeforeSuite 捕获套件配置。
func (h *Hook) BeforeSuite(settings map[string]any) {
	h.current.Store(NewResolver(settings, h.fixtures))
	slog.Debug("Captured suite settings", "keys", len(settings))
}

// BeforeStep 在步骤执行前原地改写参数。
func (h *Hook) BeforeStep(args Arguments) {
	h.Resolver().ResolveArguments(args)
}

// Resolver 返回当前套件的解析器。
func (h *Hook) Resolver() *Resolver {
	return h.current.Load()
}
