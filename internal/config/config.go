// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

import (
	"github.com/SirIleBo/elasticsearch/pkg/expansion"
)

// AppName 应用名称，用于默认配置文件路径。
const AppName = "esdist"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "ESDIST_"

// Config 应用配置。
type Config struct {
	Package   PackageConfig     `json:"package" desc:"安装包信息"`
	Render    RenderConfig      `json:"render" desc:"模板渲染配置"`
	Overrides map[string]string `json:"overrides" desc:"覆盖变量取值 (所有格式生效)" expand:"-"`
}

// PackageConfig 安装包信息。
type PackageConfig struct {
	Name    string `json:"name" desc:"包名"`
	Version string `json:"version" desc:"包版本"`
}

// RenderConfig 模板渲染配置。
type RenderConfig struct {
	Templates string   `json:"templates" desc:"模板目录"`
	Output    string   `json:"output" desc:"输出目录"`
	Formats   []string `json:"formats" desc:"目标格式 (deb, rpm, default)"`
	Check     bool     `json:"check" desc:"校验渲染后的 Shell 脚本"`
	Workers   int      `json:"workers" desc:"并发渲染的格式数 (0 表示不限制)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Package: PackageConfig{
			Name:    `${ES_PACKAGE_NAME:-elasticsearch}`,
			Version: `${ES_VERSION:-7.0.0}`,
		},
		Render: RenderConfig{
			Templates: "distribution/src",
			Output:    "build/distributions",
			Formats:   []string{"deb", "rpm", "default"},
		},
	}
}

// Catalog 返回应用了 Overrides 的变量目录。
func (c *Config) Catalog() *expansion.Catalog {
	catalog := expansion.Default()
	if len(c.Overrides) == 0 {
		return catalog
	}

	vars := make([]expansion.Variable, 0, len(c.Overrides))
	for name, value := range c.Overrides {
		vars = append(vars, expansion.Variable{Name: name, Value: expansion.Literal(value)})
	}

	return catalog.With(vars...)
}

// Formats 解析 Render.Formats，去除重复项。
//
// 未知格式原样保留，按 default 取值。
func (c *Config) Formats() []expansion.Format {
	seen := make(map[expansion.Format]bool, len(c.Render.Formats))
	out := make([]expansion.Format, 0, len(c.Render.Formats))
	for _, s := range c.Render.Formats {
		f, _ := expansion.ParseFormat(s)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}

	return out
}
