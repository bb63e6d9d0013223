package templexp_test

import (
	"fmt"

	"github.com/SirIleBo/elasticsearch/pkg/templexp"
)

// Example_replaceTokens 演示占位符替换，未知占位符保持原样。
func Example_replaceTokens() {
	out := templexp.ReplaceTokens("-Xms@heap.min@ -Xmx@heap.max@ @unknown@", map[string]string{
		"heap.min": "1g",
		"heap.max": "2g",
	})
	fmt.Println(out)
	fmt.Println(templexp.Unresolved(out))

	// Output:
	// -Xms1g -Xmx2g @unknown@
	// [unknown]
}

// Example_expandEnv 演示配置值的默认值回退。
func Example_expandEnv() {
	out, _ := templexp.ExpandEnv(`${ES_DIST_EXAMPLE_MISSING:-7.0.0}`, nil)
	fmt.Println(out)

	// Output:
	// 7.0.0
}
