package expansion

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrEmptyName 变量名为空。
	ErrEmptyName = errors.New("expansion: empty variable name")
	// ErrDuplicateVariable 目录中存在同名变量。
	ErrDuplicateVariable = errors.New("expansion: duplicate variable")
)

// Variable 一个模板变量定义。
type Variable struct {
	Name        string
	Value       Value
	Description string
}

// Catalog 只读的变量目录，按定义顺序保存。
type Catalog struct {
	vars  []Variable
	index map[string]int
}

// NewCatalog 构造变量目录，变量名必须非空且唯一。
func NewCatalog(vars ...Variable) (*Catalog, error) {
	c := &Catalog{
		vars:  make([]Variable, 0, len(vars)),
		index: make(map[string]int, len(vars)),
	}
	for _, v := range vars {
		if v.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := c.index[v.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name)
		}
		c.index[v.Name] = len(c.vars)
		c.vars = append(c.vars, v)
	}

	return c, nil
}

// MustCatalog 调用 [NewCatalog] 并在失败时 panic，适合包级初始化。
func MustCatalog(vars ...Variable) *Catalog {
	c, err := NewCatalog(vars...)
	if err != nil {
		panic(err)
	}

	return c
}

// With 返回替换（或追加）指定变量后的新目录，原目录不变。
//
// 同一次调用中重复出现的变量名以最后一个为准。
func (c *Catalog) With(vars ...Variable) *Catalog {
	out := &Catalog{
		vars:  slices.Clone(c.vars),
		index: make(map[string]int, len(c.vars)+len(vars)),
	}
	for name, i := range c.index {
		out.index[name] = i
	}
	for _, v := range vars {
		if v.Name == "" {
			continue
		}
		if i, ok := out.index[v.Name]; ok {
			out.vars[i] = v

			continue
		}
		out.index[v.Name] = len(out.vars)
		out.vars = append(out.vars, v)
	}

	return out
}

// Variables 返回变量定义的副本。
func (c *Catalog) Variables() []Variable {
	return slices.Clone(c.vars)
}

// Lookup 按名称查找变量定义。
func (c *Catalog) Lookup(name string) (Variable, bool) {
	i, ok := c.index[name]
	if !ok {
		return Variable{}, false
	}

	return c.vars[i], true
}

// Len 返回变量数量。
func (c *Catalog) Len() int {
	return len(c.vars)
}

// Resolve 为指定格式解析全部变量，返回新的 [Table]。
//
// 未知格式按 default 取值；无可用值的变量被省略。
func (c *Catalog) Resolve(format Format, packageName, packageVersion string) Table {
	return c.ResolveRequest(Request{
		Format:         format,
		PackageName:    packageName,
		PackageVersion: packageVersion,
	})
}

// ResolveRequest 同 [Catalog.Resolve]，参数以 [Request] 传入。
func (c *Catalog) ResolveRequest(req Request) Table {
	table := make(Table, len(c.vars))
	for _, v := range c.vars {
		if s, ok := v.Value.Resolve(req); ok {
			table[v.Name] = s
		}
	}

	return table
}

// Table 解析结果：变量名 → 取值。
type Table map[string]string

// Keys 返回排序后的变量名。
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Lookup 返回变量取值及其是否存在。
func (t Table) Lookup(name string) (string, bool) {
	s, ok := t[name]

	return s, ok
}
