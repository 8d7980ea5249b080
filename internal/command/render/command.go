// Package render 提供 feature 文件渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command"
)

// Command 渲染命令
var Command = &cli.Command{
	Name:      "render",
	Usage:     "解析 feature 文件并输出替换占位符后的场景",
	ArgsUsage: "<file.feature>...",
	Flags:     command.Flags(),
	Action:    action,
}
