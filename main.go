package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/SirIleBo/elasticsearch/internal/command"
	"github.com/SirIleBo/elasticsearch/internal/command/check"
	"github.com/SirIleBo/elasticsearch/internal/command/render"
	"github.com/SirIleBo/elasticsearch/internal/command/vars"
	"github.com/SirIleBo/elasticsearch/internal/config"
)

// version 由构建时 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    config.AppName,
		Usage:   "安装包模板变量与渲染工具",
		Version: version,
		Flags: []cli.Flag{
			command.LogLevelFlag,
			command.ConfigFlag,
		},
		Before: command.SetupLogging,
		Commands: []*cli.Command{
			vars.Command,
			render.Command,
			check.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
