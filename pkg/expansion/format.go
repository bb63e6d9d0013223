package expansion

import "strings"

// Format 安装包目标格式。
type Format string

// 已知格式。tar/zip 等归档格式统一使用 FormatDefault 的取值。
const (
	FormatDeb     Format = "deb"
	FormatRPM     Format = "rpm"
	FormatDefault Format = "default"
)

// archiveAliases 归档类格式别名，均映射到 FormatDefault。
var archiveAliases = map[string]Format{
	"def": FormatDefault,
	"tar": FormatDefault,
	"zip": FormatDefault,
}

// Formats 返回已知格式列表。
func Formats() []Format {
	return []Format{FormatDeb, FormatRPM, FormatDefault}
}

// ParseFormat 规范化格式标识。
//
// 大小写与首尾空白不敏感；tar、zip、def 映射为 default。
// 未知标识原样保留并返回 false，解析时按 default 处理。
func ParseFormat(s string) (Format, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := archiveAliases[name]; ok {
		return alias, true
	}

	f := Format(name)

	return f, f.Known()
}

// Known 报告是否为已知格式。
func (f Format) Known() bool {
	switch f {
	case FormatDeb, FormatRPM, FormatDefault:
		return true
	}

	return false
}

func (f Format) String() string {
	return string(f)
}
