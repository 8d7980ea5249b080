package godogparam

import (
	"context"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
)

// options 插件选项。
type options struct {
	fixtures gherkinparam.Store
	loader   func() (map[string]any, error)
}

// Option 插件选项函数。
type Option func(*options)

// WithFixtures 设置夹具存储，默认为空的 [gherkinparam.Fixtures]。
func WithFixtures(store gherkinparam.Store) Option {
	return func(o *options) {
		o.fixtures = store
	}
}

// WithSettings 使用固定的套件配置。
func WithSettings(settings map[string]any) Option {
	return func(o *options) {
		o.loader = func() (map[string]any, error) { return settings, nil }
	}
}

// WithSettingsLoader 在每个套件开始时调用 load 获取配置。
func WithSettingsLoader(load func() (map[string]any, error)) Option {
	return func(o *options) {
		o.loader = load
	}
}

// WithSettingsFrom 在每个套件开始时通过 [cfgm.LoadMap] 读取配置。
//
// 未设置任何 settings 选项时，等价于 WithSettingsFrom()，即搜索 [cfgm.SuitePaths]。
func WithSettingsFrom(opts ...cfgm.Option) Option {
	return func(o *options) {
		o.loader = func() (map[string]any, error) { return cfgm.LoadMap(opts...) }
	}
}

// Plugin godog 插件。
type Plugin struct {
	hook   *gherkinparam.Hook
	loader func() (map[string]any, error)
}

// New 创建插件。
func New(opts ...Option) *Plugin {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fixtures == nil {
		o.fixtures = gherkinparam.NewFixtures(nil)
	}
	if o.loader == nil {
		WithSettingsFrom()(o)
	}

	return &Plugin{
		hook:   gherkinparam.NewHook(o.fixtures),
		loader: o.loader,
	}
}

// Hook 返回底层的 [gherkinparam.Hook]。
func (p *Plugin) Hook() *gherkinparam.Hook { return p.hook }

// InitializeTestSuite 注册 BeforeSuite，可直接作为 godog.TestSuite.TestSuiteInitializer。
func (p *Plugin) InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(p.BeforeSuite)
}

// BeforeSuite 加载并捕获套件配置。
//
// 配置加载失败是前置条件错误，直接 panic。
func (p *Plugin) BeforeSuite() {
	settings, err := p.loader()
	if err != nil {
		panic(fmt.Sprintf("godogparam: failed to load suite settings: %v", err))
	}
	p.hook.BeforeSuite(settings)
}

// InitializeScenario 注册 before-step hook。
func (p *Plugin) InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.StepContext().Before(func(ctx context.Context, st *godog.Step) (context.Context, error) {
		p.BeforeStep(st)
		return ctx, nil
	})
}

// BeforeStep 原地改写步骤文本中的引号参数、DocString 与表格。
func (p *Plugin) BeforeStep(st *godog.Step) {
	p.hook.BeforeStep(StepArguments(st))
}

// Register 等价于 ctx.Step(expr, p.Step(fn))。
func (p *Plugin) Register(ctx *godog.ScenarioContext, expr any, fn any) {
	ctx.Step(expr, p.Step(fn))
}

// Step 包装步骤函数，调用前解析其中的 string 参数。
//
// 返回值与 fn 类型相同，可直接交给 ctx.Step。解析结果经
// [gherkinparam.Format] 转为字符串，未命中得到空字符串。
// fn 不是函数时 panic。
func (p *Plugin) Step(fn any) any {
	handler := reflect.ValueOf(fn)
	if handler.Kind() != reflect.Func {
		panic(fmt.Sprintf("godogparam: step handler must be a func, got %T", fn))
	}

	typ := handler.Type()
	wrapped := reflect.MakeFunc(typ, func(in []reflect.Value) []reflect.Value {
		r := p.hook.Resolver()
		for i, arg := range in {
			if arg.Kind() != reflect.String {
				continue
			}
			resolved := gherkinparam.Format(r.ResolveScalar(arg.String()))
			in[i] = reflect.ValueOf(resolved).Convert(arg.Type())
		}
		if typ.IsVariadic() {
			return handler.CallSlice(in)
		}

		return handler.Call(in)
	})

	return wrapped.Interface()
}
