package expansion

import (
	"fmt"
	"sync"
)

// 默认目录中的变量名。
const (
	VarProjectName    = "project.name"
	VarProjectVersion = "project.version"
	VarHeapMin        = "heap.min"
	VarHeapMax        = "heap.max"
	VarPathConf       = "path.conf"
	VarPathData       = "path.data"
	VarPathEnv        = "path.env"
	VarSourcePathEnv  = "source.path.env"
	VarPathLogs       = "path.logs"
	VarGCLog          = "loggc"
	VarHeapDumpPath   = "heap.dump.path"
	VarErrorFile      = "error.file"
	VarStoppingTime   = "stopping.timeout"
	VarScriptsFooter  = "scripts.footer"
)

// 归档包没有环境文件，仅在调用方未设置 ES_PATH_CONF 时给出默认值。
const conditionalPathConf = `if [ -z "$ES_PATH_CONF" ]; then ES_PATH_CONF="$ES_HOME"/config; fi`

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustCatalog(
		Variable{
			Name:        VarProjectName,
			Value:       Derived(func(r Request) (string, bool) { return r.PackageName, true }),
			Description: "包名",
		},
		Variable{
			Name:        VarProjectVersion,
			Value:       Derived(func(r Request) (string, bool) { return r.PackageVersion, true }),
			Description: "包版本",
		},
		Variable{Name: VarHeapMin, Value: Literal("1g"), Description: "JVM 初始堆大小"},
		Variable{Name: VarHeapMax, Value: Literal("1g"), Description: "JVM 最大堆大小"},
		Variable{
			Name: VarPathConf,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "/etc/elasticsearch",
				FormatRPM:     "/etc/elasticsearch",
				FormatDefault: `"$ES_HOME"/config`,
			}),
			Description: "配置目录",
		},
		Variable{
			Name: VarPathData,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "/var/lib/elasticsearch",
				FormatRPM:     "/var/lib/elasticsearch",
				FormatDefault: "#path.data: /path/to/data",
			}),
			Description: "数据目录（归档包中为注释行）",
		},
		Variable{
			Name: VarPathEnv,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "/etc/default/elasticsearch",
				FormatRPM:     "/etc/sysconfig/elasticsearch",
				FormatDefault: conditionalPathConf,
			}),
			Description: "环境文件路径",
		},
		Variable{
			Name: VarSourcePathEnv,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "source /etc/default/elasticsearch",
				FormatRPM:     "source /etc/sysconfig/elasticsearch",
				FormatDefault: conditionalPathConf,
			}),
			Description: "加载环境文件的脚本行",
		},
		Variable{
			Name: VarPathLogs,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "/var/log/elasticsearch",
				FormatRPM:     "/var/log/elasticsearch",
				FormatDefault: "#path.logs: /path/to/logs",
			}),
			Description: "日志目录（归档包中为注释行）",
		},
		Variable{
			Name: VarGCLog,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "/var/log/elasticsearch/gc.log",
				FormatRPM:     "/var/log/elasticsearch/gc.log",
				FormatDefault: "logs/gc.log",
			}),
			Description: "GC 日志路径",
		},
		Variable{
			Name: VarHeapDumpPath,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "-XX:HeapDumpPath=/var/lib/elasticsearch",
				FormatRPM:     "-XX:HeapDumpPath=/var/lib/elasticsearch",
				FormatDefault: "-XX:HeapDumpPath=data",
			}),
			Description: "堆转储路径",
		},
		Variable{
			Name: VarErrorFile,
			Value: PerFormat(map[Format]string{
				FormatDeb:     "-XX:ErrorFile=/var/log/elasticsearch/hs_err_pid%p.log",
				FormatRPM:     "-XX:ErrorFile=/var/log/elasticsearch/hs_err_pid%p.log",
				FormatDefault: "-XX:ErrorFile=logs/hs_err_pid%p.log",
			}),
			Description: "JVM 致命错误日志路径",
		},
		Variable{
			Name:        VarStoppingTime,
			Value:       PerFormat(map[Format]string{FormatRPM: "86400"}),
			Description: "服务停止超时（秒），仅 rpm",
		},
		Variable{
			Name:        VarScriptsFooter,
			Value:       Derived(scriptsFooter),
			Description: "安装脚本结尾",
		},
	)
})

// scriptsFooter deb 的维护脚本必须在装饰性注释前以 exit 0 结束。
func scriptsFooter(r Request) (string, bool) {
	footer := fmt.Sprintf("# Built for %s-%s (%s)", r.PackageName, r.PackageVersion, r.Format)
	if r.Format == FormatDeb {
		return "exit 0\n" + footer, true
	}

	return footer, true
}

// Default 返回内置的只读变量目录。
func Default() *Catalog {
	return defaultCatalog()
}

// Resolve 使用 [Default] 目录解析变量。
func Resolve(format Format, packageName, packageVersion string) Table {
	return Default().Resolve(format, packageName, packageVersion)
}
