package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 可选，提供后会追加应用专属路径。
// 返回顺序即查找顺序，先命中的文件生效。
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	paths = append(paths, "config.yaml", "config.toml", "config/config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName] / [WithConfigFile]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}
	if len(options.configPaths) == 0 {
		options.configPaths = DefaultPaths(options.appName)
	}
	environ := options.environ
	if environ == nil {
		environ = os.Environ()
	}

	configMap := structToMap(defaultConfig)
	fields := collectFields(reflect.TypeOf(defaultConfig))

	// 2️⃣ 配置文件 (按顺序搜索，找到第一个即停止)
	loaded, err := loadFirstFile(configMap, options)
	if err != nil {
		return nil, err
	}
	if !loaded {
		slog.Debug("No config file found, using defaults")
	}

	// 3️⃣ 环境变量
	if options.envPrefix != "" {
		applyEnv(configMap, options.envPrefix, fields, envMap(environ))
	}

	// 4️⃣ CLI flags (仅当用户明确指定时)
	if options.cmd != nil {
		applyCLIFlags(options.cmd, configMap, fields)
	}

	if !options.noEnvExpand {
		if err := expandStrings(configMap, "", skipExpandPaths(fields), environ); err != nil {
			return nil, err
		}
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return Load(defaultConfig, append(baseOpts, opts...)...)
}

func loadFirstFile(configMap map[string]any, o *options) (bool, error) {
	for _, path := range o.configPaths {
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			if o.requireConfig {
				return false, fmt.Errorf("read config file %s: %w", path, err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Debug("Skipping unreadable config file", "path", path, "error", err)
			}

			continue
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return false, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path)

		return true, nil
	}

	return false, nil
}

// field 配置结构体中的一个叶子字段。
type field struct {
	key      string // 完整 key，如 render.formats
	typ      reflect.Type
	noExpand bool
}

// collectFields 按 json tag 递归收集叶子字段。
func collectFields(typ reflect.Type) []field {
	var fields []field
	collectFieldsRecursive(typ, "", false, &fields)

	return fields
}

func collectFieldsRecursive(typ reflect.Type, prefix string, noExpand bool, fields *[]field) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		sf := typ.Field(i)
		key := configTagName(sf)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		skip := noExpand || sf.Tag.Get("expand") == "-"

		if isStructType(sf.Type) {
			collectFieldsRecursive(sf.Type, key, skip, fields)

			continue
		}
		*fields = append(*fields, field{key: key, typ: sf.Type, noExpand: skip})
	}
}

func skipExpandPaths(fields []field) map[string]bool {
	skip := make(map[string]bool)
	for _, f := range fields {
		if f.noExpand {
			skip[f.key] = true
		}
	}

	return skip
}

// envKey 生成环境变量名：前缀 + 大写 key，"." 与 "-" 转为 "_"。
//
// 示例 (前缀 "ESDIST_")：render.formats → ESDIST_RENDER_FORMATS
func envKey(prefix, key string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// applyEnv 将非空的前缀环境变量写入配置 map。map 类型字段不参与绑定。
func applyEnv(config map[string]any, prefix string, fields []field, env map[string]string) {
	for _, f := range fields {
		name := envKey(prefix, f.key)
		val := env[name]
		if val == "" {
			continue
		}

		switch f.typ.Kind() {
		case reflect.Map:
			continue
		case reflect.Slice:
			parts := strings.Split(val, ",")
			items := make([]any, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					items = append(items, p)
				}
			}
			setByPath(config, f.key, items)
		default:
			setByPath(config, f.key, val)
		}
		slog.Debug("Loaded env binding", "env", name, "path", f.key)
	}
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称由 key 中的 "." 替换为 "-" 得到。
func applyCLIFlags(cmd *cli.Command, config map[string]any, fields []field) {
	for _, f := range fields {
		name := strings.ReplaceAll(f.key, ".", "-")
		if !cmd.IsSet(name) {
			continue
		}

		if f.typ == durationType {
			setByPath(config, f.key, cmd.Duration(name))

			continue
		}

		switch f.typ.Kind() {
		case reflect.String:
			setByPath(config, f.key, cmd.String(name))
		case reflect.Bool:
			setByPath(config, f.key, cmd.Bool(name))
		case reflect.Int:
			setByPath(config, f.key, cmd.Int(name))
		case reflect.Int64:
			setByPath(config, f.key, cmd.Int64(name))
		case reflect.Float64:
			setByPath(config, f.key, cmd.Float64(name))
		case reflect.Slice:
			if f.typ.Elem().Kind() == reflect.String {
				setByPath(config, f.key, cmd.StringSlice(name))
			}
		case reflect.Map:
			if f.typ.Key().Kind() == reflect.String && f.typ.Elem().Kind() == reflect.String {
				setByPath(config, f.key, cmd.StringMap(name))
			}
		default:
			// 不支持的类型，忽略
		}
	}
}

var durationType = reflect.TypeFor[time.Duration]()
