package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/SirIleBo/elasticsearch/internal/command"
	"github.com/SirIleBo/elasticsearch/internal/renderer"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	formats := cfg.Formats()
	if len(formats) == 0 {
		return errors.New("no formats to render")
	}
	for _, f := range formats {
		if !f.Known() {
			slog.Warn("Unknown format, resolving with default values", "format", f)
		}
	}

	info, err := os.Stat(cfg.Render.Templates)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("templates: %s is not a directory", cfg.Render.Templates)
	}

	r := &renderer.Renderer{
		Catalog:   cfg.Catalog(),
		Templates: os.DirFS(cfg.Render.Templates),
		Output:    cfg.Render.Output,
		Check:     cfg.Render.Check,
		Workers:   cfg.Render.Workers,
		Logger:    slog.Default(),
	}

	slog.Info("Rendering templates",
		"package", cfg.Package.Name,
		"version", cfg.Package.Version,
		"templates", cfg.Render.Templates,
		"formats", formats,
	)
	results, err := r.Render(ctx, formats, cfg.Package.Name, cfg.Package.Version)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s\t%d files\t%s\n", res.Format, len(res.Files), res.Dir); err != nil {
			return err
		}
	}

	return nil
}
