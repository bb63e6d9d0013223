// Package shcheck 校验渲染后的安装包维护脚本语法。
package shcheck

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ErrSyntax 脚本语法错误。
var ErrSyntax = errors.New("shcheck: syntax error")

// maintainerScripts deb/rpm 维护脚本的常见文件名。
var maintainerScripts = map[string]bool{
	"preinst":   true,
	"postinst":  true,
	"prerm":     true,
	"postrm":    true,
	"pretrans":  true,
	"posttrans": true,
	"config":    true,
}

var shellInterpreters = []string{"sh", "bash", "dash", "ksh"}

// IsScript 判断文件是否应按 Shell 脚本校验：.sh 后缀、维护脚本名或 Shell 解释器的 shebang。
func IsScript(name string, content []byte) bool {
	base := path.Base(name)
	if strings.HasSuffix(base, ".sh") || maintainerScripts[base] {
		return true
	}

	return shellShebang(content)
}

func shellShebang(content []byte) bool {
	if len(content) < 2 || content[0] != '#' || content[1] != '!' {
		return false
	}

	line, _, _ := strings.Cut(string(content[2:]), "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	interp := path.Base(fields[0])
	// #!/usr/bin/env bash
	if interp == "env" && len(fields) > 1 {
		interp = fields[1]
	}
	for _, sh := range shellInterpreters {
		if interp == sh {
			return true
		}
	}

	return false
}

// Check 以 bash 语法解析 script，name 仅用于错误信息。
//
// 返回的 error 包装 [ErrSyntax]，并包含行列位置。
func Check(name, script string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(script), name); err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return nil
}
