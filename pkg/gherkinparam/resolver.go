package gherkinparam

import (
	"log/slog"
)

// Resolver 持有一个套件的配置快照与夹具存储，负责解析占位符。
//
// 配置在构造后只读；每个套件应使用独立的 Resolver，见 [Hook]。
type Resolver struct {
	settings map[string]any
	fixtures Store
}

// NewResolver 创建解析器。settings 与 fixtures 均可为 nil。
func NewResolver(settings map[string]any, fixtures Store) *Resolver {
	if settings == nil {
		settings = map[string]any{}
	}
	if fixtures == nil {
		fixtures = emptyStore{}
	}

	return &Resolver{settings: settings, fixtures: fixtures}
}

// Settings 返回当前套件配置。
func (r *Resolver) Settings() map[string]any { return r.settings }

// Fixtures 返回夹具存储。
func (r *Resolver) Fixtures() Store { return r.fixtures }

// ResolveScalar 解析单个字符串参数。
//
// 不是占位符时原样返回 raw；是占位符时返回解析结果，未命中为 nil。
func (r *Resolver) ResolveScalar(raw string) any {
	p, ok := Parse(raw)
	if !ok {
		return raw
	}

	return r.Resolve(p)
}

// Resolve 按分类结果解析占位符。
func (r *Resolver) Resolve(p Placeholder) any {
	var (
		value any
		found bool
	)
	switch p.Kind {
	case KindConfig:
		value, found = r.fromConfig(p.Path)
	case KindArray:
		value, found = r.fromArray(p.Name, p.Key)
	default:
		value, found = r.fixtures.Get(p.Body)
	}

	if !found {
		slog.Debug("Placeholder not resolved", "placeholder", p.Raw, "kind", p.Kind.String())
	}

	return value
}

// fromConfig 沿路径下钻套件配置。
//
// 遇到非容器值立即停止；某段 key 不存在时停止并返回上一次命中的值。
// 返回的 bool 表示整条路径是否都命中。
func (r *Resolver) fromConfig(path []string) (any, bool) {
	var value any
	var current any = r.settings
	for i, segment := range path {
		v, ok := index(current, segment)
		if !ok {
			return value, false
		}
		value = v
		if !isContainer(v) {
			return value, i == len(path)-1
		}
		current = v
	}

	return value, true
}

// fromArray 取夹具 name 中的 key。
//
// 夹具不存在、不可索引或 key 不存在时均返回 nil。
func (r *Resolver) fromArray(name, key string) (any, bool) {
	container, ok := r.fixtures.Get(name)
	if !ok {
		return nil, false
	}

	return index(container, key)
}

// ResolveTable 逐个单元格解析，保持行列结构与顺序。
func (r *Resolver) ResolveTable(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, cell := range row {
			out[i][j] = r.ResolveScalar(cell)
		}
	}

	return out
}

// ResolveArguments 原地改写步骤参数。
//
// 字符串参数按 [Resolver.ResolveScalar] 解析，[Table] 参数逐格解析后
// 通过 Replace 重建，其余类型保持不变。
func (r *Resolver) ResolveArguments(args Arguments) {
	for i := range args.Len() {
		switch arg := args.At(i).(type) {
		case string:
			args.Set(i, r.ResolveScalar(arg))
		case Table:
			args.Set(i, arg.Replace(r.ResolveTable(arg.Rows())))
		}
	}
}
