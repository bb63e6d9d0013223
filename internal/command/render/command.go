// Package render 提供按安装包格式渲染模板目录的命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/SirIleBo/elasticsearch/internal/command"
)

// Command 渲染命令
var Command = &cli.Command{
	Name:  "render",
	Usage: "按格式渲染模板目录",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "render-templates",
			Aliases: []string{"t"},
			Value:   command.Defaults.Render.Templates,
			Usage:   "模板目录",
		},
		&cli.StringFlag{
			Name:    "render-output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Render.Output,
			Usage:   "输出目录",
		},
		&cli.StringSliceFlag{
			Name:    "render-formats",
			Aliases: []string{"f"},
			Value:   command.Defaults.Render.Formats,
			Usage:   "目标格式",
		},
		&cli.BoolFlag{
			Name:  "render-check",
			Value: command.Defaults.Render.Check,
			Usage: "校验渲染后的 Shell 脚本",
		},
		&cli.IntFlag{
			Name:  "render-workers",
			Value: command.Defaults.Render.Workers,
			Usage: "并发渲染的格式数 (0 表示不限制)",
		},
	}, command.PackageFlags()...),
	Action: action,
}
