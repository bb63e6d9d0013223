package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SirIleBo/elasticsearch/internal/command"
	app "github.com/SirIleBo/elasticsearch/internal/command/render"
)

func main() {
	app.Command.Flags = append(app.Command.Flags, command.LogLevelFlag, command.ConfigFlag)
	app.Command.Before = command.SetupLogging

	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
