// Package vars 提供查看模板变量表的命令。
package vars

import (
	"github.com/urfave/cli/v3"

	"github.com/SirIleBo/elasticsearch/internal/command"
)

// Command 变量表命令
var Command = &cli.Command{
	Name:  "vars",
	Usage: "输出指定格式的模板变量表",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "default",
			Usage:   "目标格式 (deb, rpm, default, tar, zip)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   outputYAML,
			Usage:   "输出格式 (yaml, json, properties)",
		},
	}, command.PackageFlags()...),
	Action: action,
}
