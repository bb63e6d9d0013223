package templexp

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ExpandEnv 对 text 执行 Shell 参数展开，environ 为 "KEY=VALUE" 列表（通常是 os.Environ()）。
//
// 支持 $VAR、${VAR}、${VAR:-default}、${VAR:=default}、${VAR:?msg} 等形式。
// 不执行命令替换，遇到 $(...) 返回 error。
func ExpandEnv(text string, environ []string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	word, err := syntax.NewParser().Document(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("templexp: parse %q: %w", text, err)
	}

	cfg := &expand.Config{Env: expand.ListEnviron(environ...)}
	out, err := expand.Document(cfg, word)
	if err != nil {
		return "", fmt.Errorf("templexp: expand %q: %w", text, err)
	}

	return out, nil
}
