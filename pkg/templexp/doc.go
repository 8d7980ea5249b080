// Package templexp 为套件配置与夹具文件提供 Shell 参数展开。
//
// 仅处理 ${...} 语法，在解析 YAML/JSON 之前对文件内容做轻量替换，
// 便于在配置中引用 CI 环境变量。与步骤中的 {{param}} 占位符互不干扰。
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开与 "$$" 字面量
//  3. ":=" 赋值仅作用于当前展开过程
//  4. 无法识别的表达式保持原样
//
// # 快速开始
//
//	content := `db_host: "${DB_HOST:-localhost}"`
//	expanded, err := templexp.ExpandTemplate(content)
//
// 使用自定义变量而不是环境变量：
//
//	expanded, err := templexp.Expand(content, map[string]string{"DB_HOST": "db"})
//
// 详见 [ExpandTemplate] 文档。
package templexp
