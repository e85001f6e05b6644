// Package binding expands ${name} placeholders, e.g. in output paths.
package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${name} 替换为 fields 中的值。
// 若名称不存在，则保留原占位符。
func Interpolate(text string, fields map[string]any) string {
	if len(fields) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-1])
		if val, ok := fields[name]; ok && val != nil {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Placeholders 返回文本中引用的全部名称（按出现顺序，去重）。
func Placeholders(text string) []string {
	var names []string
	seen := map[string]bool{}
	for _, groups := range exprPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(groups[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
