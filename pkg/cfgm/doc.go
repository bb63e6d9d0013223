// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON/TOML，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，三种文件格式共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "esdist",
//	    cfgm.WithEnvPrefix("ESDIST_"),
//	)
//
// # 配置文件路径
//
// [WithAppName] 会生成默认搜索路径（见 [DefaultPaths]）：
//   - .esdist.yaml (当前目录)
//   - ~/.esdist.yaml (用户主目录)
//   - /etc/esdist/config.yaml (系统配置)
//   - config.yaml, config.toml, config/config.yaml (通用路径)
//
// # 环境变量(前缀)
//
// 前缀 + 大写的配置 key，点号与连字符转为下划线，只绑定标量与切片字段：
//   - ESDIST_PACKAGE_VERSION → package.version
//   - ESDIST_RENDER_FORMATS=deb,rpm → render.formats
//
// # 值展开
//
// 合并完成后，字符串值执行 Shell 参数展开（见 templexp.ExpandEnv）：
//
//	package:
//	  version: "${ES_VERSION:-7.0.0}"
//
// 字段标记 expand:"-" 时跳过展开（如包含 "$ES_HOME" 的覆盖值），
// [WithoutEnvExpansion] 关闭全部展开。
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - package.version → --package-version
//   - render.formats → --render-formats
package cfgm
