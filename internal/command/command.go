// Package command 提供变量查看、模板渲染与脚本校验的命令行功能。
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/SirIleBo/elasticsearch/internal/config"
	"github.com/SirIleBo/elasticsearch/pkg/cfgm"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// LogLevelFlag 日志级别，供根命令与独立入口共用。
var LogLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Value:   "info",
	Usage:   "日志级别 (debug, info, warn, error)",
	Sources: cli.EnvVars(config.EnvPrefix + "LOG_LEVEL"),
}

// ConfigFlag 显式指定配置文件。
var ConfigFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "配置文件路径 (yaml, json, toml)",
}

// PackageFlags 包信息相关 flags。
func PackageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "package-name",
			Value: Defaults.Package.Name,
			Usage: "包名",
		},
		&cli.StringFlag{
			Name:  "package-version",
			Value: Defaults.Package.Version,
			Usage: "包版本",
		},
		&cli.StringMapFlag{
			Name:  "overrides",
			Usage: "覆盖变量取值，如 --overrides heap.max=2g",
		},
	}
}

// SetupLogging 作为 Before 钩子，按 --log-level 配置默认 slog logger。
func SetupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cmd.String(LogLevelFlag.Name)))); err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return ctx, nil
}

// LoadConfig 按 默认值 → 配置文件 → 环境变量 → CLI flags 加载配置。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	opts := []cfgm.Option{cfgm.WithEnvPrefix(config.EnvPrefix)}
	if path := cmd.String(ConfigFlag.Name); path != "" {
		opts = append(opts, cfgm.WithConfigFile(path))
	}

	return cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName, opts...)
}
