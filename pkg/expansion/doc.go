// Package expansion 为系统安装包生成按格式区分的模板变量表。
//
// 每个变量的取值有三种形态（见 [Value]）：
//   - [Literal] - 与格式无关的固定值
//   - [PerFormat] - 按格式取值，缺失时回退到 [FormatDefault]
//   - [Derived] - 由请求（格式、包名、版本）计算得出
//
// # 解析规则
//
//  1. 固定值原样返回
//  2. 按格式取值时先查请求的格式，再查 default
//  3. 两者都没有时该变量不出现在结果中（不是错误）
//
// 第 3 条是刻意的：例如 stopping.timeout 只对 rpm 有意义，
// 其他格式的模板不应拿到一个伪造的值，未解析的 @stopping.timeout@ 保持原样。
//
// # 快速开始
//
//	table := expansion.Resolve(expansion.FormatDeb, "elasticsearch", "7.0.0")
//	fmt.Println(table["path.conf"]) // /etc/elasticsearch
//
// 覆盖部分变量（不会修改默认目录）：
//
//	catalog := expansion.Default().With(
//	    expansion.Variable{Name: "heap.max", Value: expansion.Literal("2g")},
//	)
//	table := catalog.Resolve(expansion.FormatRPM, "elasticsearch", "7.0.0")
//
// 解析是纯函数，[Catalog] 构造后只读，可在多个 goroutine 中并发调用。
package expansion
