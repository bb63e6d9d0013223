package cfgm

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	appName       string // 应用名称，用于生成默认配置路径
	cmd           *cli.Command
	configPaths   []string
	baseDir       string // 相对路径的解析基准，空字符串表示当前工作目录
	envPrefix     string
	environ       []string // nil 时使用 os.Environ()
	noEnvExpand   bool
	requireConfig bool // 显式指定的配置文件必须存在
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径。
//
// 按顺序查找，命中首个文件即停止；相对路径会基于 [WithBaseDir] 解析。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithConfigFile 指定唯一的配置文件，文件不存在时返回 error。
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configPaths = []string{path}
		o.requireConfig = true
	}
}

// WithBaseDir 设置配置路径的解析基准。绝对路径不受影响。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 示例 (前缀为 "ESDIST_")：
//   - ESDIST_PACKAGE_NAME → package.name
//   - ESDIST_RENDER_CHECK → render.check
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithEnviron 替换环境变量来源，格式同 os.Environ()。
func WithEnviron(environ []string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// WithoutEnvExpansion 禁用字符串值的 Shell 参数展开，保留原始 ${...}。
func WithoutEnvExpansion() Option {
	return func(o *options) {
		o.noEnvExpand = true
	}
}
