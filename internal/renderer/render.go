// Package renderer 将模板目录按安装包格式渲染到输出目录。
package renderer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/SirIleBo/elasticsearch/pkg/expansion"
	"github.com/SirIleBo/elasticsearch/pkg/shcheck"
	"github.com/SirIleBo/elasticsearch/pkg/templexp"
)

// Renderer 渲染器。
//
// 同一 Renderer 可并发渲染多个格式，Catalog 与 Templates 只读。
type Renderer struct {
	Catalog   *expansion.Catalog // nil 时使用 expansion.Default()
	Templates fs.FS
	Output    string // 输出根目录，每个格式写入 <Output>/<format>/
	Check     bool   // 校验渲染后的 Shell 脚本
	Workers   int    // 并发渲染的格式数，<= 0 表示不限制
	Logger    *slog.Logger
}

// Result 单个格式的渲染结果。
type Result struct {
	Format     expansion.Format
	Dir        string
	Files      []string            // 相对模板根目录的路径，已排序
	Unresolved map[string][]string // 文件 → 残留占位符
}

// Render 为每个格式渲染一次模板目录，结果顺序与 formats 一致。
func (r *Renderer) Render(ctx context.Context, formats []expansion.Format, name, version string) ([]Result, error) {
	if r.Templates == nil {
		return nil, errors.New("render: no templates")
	}

	results := make([]Result, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, f := range formats {
		g.Go(func() error {
			res, err := r.renderFormat(ctx, f, name, version)
			if err != nil {
				return fmt.Errorf("render %s: %w", f, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Renderer) catalog() *expansion.Catalog {
	if r.Catalog != nil {
		return r.Catalog
	}

	return expansion.Default()
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}

func (r *Renderer) renderFormat(ctx context.Context, format expansion.Format, name, version string) (Result, error) {
	table := r.catalog().Resolve(format, name, version)
	res := Result{
		Format:     format,
		Dir:        filepath.Join(r.Output, string(format)),
		Unresolved: map[string][]string{},
	}
	log := r.logger().With("format", format)

	err := fs.WalkDir(r.Templates, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		dst := filepath.Join(res.Dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		content, err := fs.ReadFile(r.Templates, p)
		if err != nil {
			return err
		}

		out := templexp.ReplaceTokens(string(content), table)
		if r.Check && shcheck.IsScript(p, []byte(out)) {
			if err := shcheck.Check(p, out); err != nil {
				return err
			}
		}
		if missing := templexp.Unresolved(out); len(missing) > 0 {
			res.Unresolved[p] = missing
			log.Debug("Unresolved placeholders left untouched", "file", p, "names", missing)
		}

		perm := info.Mode().Perm()
		if perm == 0 {
			perm = 0o644
		}
		if err := os.WriteFile(dst, []byte(out), perm); err != nil {
			return err
		}
		res.Files = append(res.Files, p)

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	slices.Sort(res.Files)
	log.Info("Rendered templates", "dir", res.Dir, "files", len(res.Files))

	return res, nil
}
