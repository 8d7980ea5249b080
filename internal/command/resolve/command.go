// Package resolve 提供占位符解析命令。
package resolve

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command"
)

// Command 解析命令
var Command = &cli.Command{
	Name:      "resolve",
	Usage:     "解析占位符并输出结果",
	ArgsUsage: "<placeholder>...",
	Flags:     command.Flags(),
	Action:    action,
}
