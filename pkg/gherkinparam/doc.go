// Package gherkinparam 为 Gherkin 步骤参数提供 {{param}} 占位符替换。
//
// 在步骤执行前扫描字符串参数与表格参数，将完整匹配的占位符替换为
// 夹具 (fixture)、套件配置或数组下标查找的结果。
// 仅做整串匹配，不是模板引擎：不支持循环、条件与嵌套占位符。
//
// # 占位符语法
//
//   - {{name}} - 夹具查找，等价于 store.Get("name")
//   - {{config:db:host}} - 套件配置路径查找，前缀 config 可省略
//   - {{users[0]}} - 取夹具 users 中的键/下标 0
//
// 分类按固定优先级进行：配置路径 → 数组 → 夹具。
//
// # 未命中语义
//
// 任何阶段的未命中都返回 nil，而不是错误；
// 不是占位符的字符串原样返回。
//
// # 快速开始
//
//	fixtures := gherkinparam.NewFixtures(map[string]any{"username": "alice"})
//	hook := gherkinparam.NewHook(fixtures)
//
//	hook.BeforeSuite(map[string]any{"db": map[string]any{"host": "localhost"}})
//
//	args := gherkinparam.Args{"{{username}}", "{{config:db:host}}"}
//	hook.BeforeStep(args)
//	// args == Args{"alice", "localhost"}
//
// 宿主测试框架通过 [Arguments] 暴露步骤参数，见 godogparam 包。
package gherkinparam
