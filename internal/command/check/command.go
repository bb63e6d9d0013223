// Package check 提供 Shell 脚本语法校验命令。
package check

import "github.com/urfave/cli/v3"

// Command 校验命令
var Command = &cli.Command{
	Name:      "check",
	Usage:     "校验渲染后的 Shell 脚本语法",
	ArgsUsage: "<file>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "all",
			Usage: "不按文件名或 shebang 过滤，全部按 Shell 脚本校验",
		},
	},
	Action: action,
}
