package templexp

import (
	"slices"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 占位符扫描
// ═══════════════════════════════════════════════════════════════════════════

const tokenDelim = '@'

func isTokenChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') ||
		ch == '.' || ch == '_' || ch == '-'
}

// scanToken 从 text[start] 处的 "@" 开始识别占位符，返回名称与结束 "@" 的下标。
func scanToken(text string, start int) (string, int, bool) {
	i := start + 1
	for i < len(text) && isTokenChar(text[i]) {
		i++
	}
	if i == start+1 || i >= len(text) || text[i] != tokenDelim {
		return "", -1, false
	}

	return text[start+1 : i], i, true
}

// ═══════════════════════════════════════════════════════════════════════════
// 替换
// ═══════════════════════════════════════════════════════════════════════════

// ReplaceTokens 将 text 中的 @name@ 替换为 vars[name]。
//
// vars 中不存在的占位符原样保留，结束 "@" 会作为下一个占位符的起点重新扫描。
func ReplaceTokens(text string, vars map[string]string) string {
	if strings.IndexByte(text, tokenDelim) == -1 {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != tokenDelim {
			buf.WriteByte(ch)
			i++
			continue
		}

		name, end, ok := scanToken(text, i)
		if !ok {
			buf.WriteByte(ch)
			i++
			continue
		}
		val, found := vars[name]
		if !found {
			buf.WriteString(text[i:end])
			i = end
			continue
		}

		buf.WriteString(val)
		i = end + 1
	}

	return buf.String()
}

// Unresolved 返回 text 中残留占位符的名称（去重、排序）。
func Unresolved(text string) []string {
	var names []string
	for i := 0; i < len(text); {
		if text[i] != tokenDelim {
			i++
			continue
		}
		name, end, ok := scanToken(text, i)
		if !ok {
			i++
			continue
		}
		names = append(names, name)
		i = end + 1
	}
	slices.Sort(names)

	return slices.Compact(names)
}
