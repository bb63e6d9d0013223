// Package templexp 提供安装包模板的占位符替换与配置值的 Shell 参数展开。
//
// 两类展开互不相干：
//
//   - [ReplaceTokens] 处理模板中的 @name@ 占位符，取值来自变量表
//   - [ExpandEnv] 处理配置值中的 ${VAR:-default} 等 Shell 参数展开，取值来自环境变量
//
// # 占位符语义
//
//  1. 名称由字母、数字、"."、"_"、"-" 组成
//  2. 变量表中不存在的占位符保持原样
//  3. 不构成占位符的 "@"（如邮箱地址）保持原样
//
// # 快速开始
//
//	out := templexp.ReplaceTokens(`ES_PATH_CONF=@path.conf@`, map[string]string{
//	    "path.conf": "/etc/elasticsearch",
//	})
//
// 检查替换后仍残留的占位符：
//
//	missing := templexp.Unresolved(out)
//
// 展开配置值：
//
//	version, err := templexp.ExpandEnv(`${ES_VERSION:-7.0.0}`, os.Environ())
package templexp
