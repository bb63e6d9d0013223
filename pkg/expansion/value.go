package expansion

import "maps"

// Kind 变量取值形态。
type Kind uint8

const (
	KindLiteral Kind = iota + 1
	KindPerFormat
	KindDerived
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPerFormat:
		return "per-format"
	case KindDerived:
		return "derived"
	}

	return "unknown"
}

// Request 一次解析请求。
type Request struct {
	Format         Format
	PackageName    string
	PackageVersion string
}

// Value 变量取值，三种形态之一。
//
// 零值不产生任何结果，对应变量会被省略。
type Value struct {
	kind     Kind
	literal  string
	byFormat map[Format]string
	derive   func(Request) (string, bool)
}

// Literal 返回与格式无关的固定值。
func Literal(s string) Value {
	return Value{kind: KindLiteral, literal: s}
}

// PerFormat 返回按格式取值的 Value。
//
// 传入的 map 会被复制，之后对其修改不影响 Value。
func PerFormat(byFormat map[Format]string) Value {
	return Value{kind: KindPerFormat, byFormat: maps.Clone(byFormat)}
}

// Derived 返回由请求计算的 Value。fn 返回 false 时变量被省略。
//
// fn 必须是纯函数。
func Derived(fn func(Request) (string, bool)) Value {
	return Value{kind: KindDerived, derive: fn}
}

// Kind 返回取值形态。
func (v Value) Kind() Kind {
	return v.kind
}

// Resolve 按请求解析取值；第二个返回值为 false 表示该变量应被省略。
func (v Value) Resolve(req Request) (string, bool) {
	switch v.kind {
	case KindLiteral:
		return v.literal, true
	case KindPerFormat:
		if s, ok := v.byFormat[req.Format]; ok {
			return s, true
		}
		s, ok := v.byFormat[FormatDefault]

		return s, ok
	case KindDerived:
		if v.derive == nil {
			return "", false
		}

		return v.derive(req)
	}

	return "", false
}
