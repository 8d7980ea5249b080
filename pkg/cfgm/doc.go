// Package cfgm 提供 gherkinparam 使用的配置加载功能。
//
// 两类数据走同一条加载链：
//   - 套件配置 (settings) 与夹具文件：无固定结构，[LoadMap] / [LoadFile] 返回 map[string]any
//   - CLI 自身配置：结构体，[Load] / [LoadCmd] 按 json tag 解码
//
// 支持 YAML/JSON，文件内容在解析前执行 ${...} 展开（见 templexp 包）。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - defaultConfig 参数或 [WithDefaults]
//  2. 配置文件 - [WithConfigPaths] 或 [WithAppName]，命中首个文件即停止
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]，仅 [Load] 支持
//
// # 套件配置
//
//	# features/suite.yaml
//	db:
//	  host: ${DB_HOST:-localhost}
//	  port: 5432
//
//	settings, err := cfgm.LoadMap(
//	    cfgm.WithConfigPaths("features/suite.yaml"),
//	    cfgm.WithEnvPrefix("SUITE_"),
//	)
//	// SUITE_DB_HOST=db.internal 覆盖 db.host
//
// 步骤中通过 {{config:db:host}} 引用。
//
// # 夹具文件
//
//	fixtures, err := cfgm.LoadFile("features/fixtures.yaml")
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - fixtures.path → --fixtures-path
//   - suite.env-prefix → --suite-env-prefix
package cfgm
