package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Default 是图例默认使用的内置字体。
const Default = "GoRegular"

var bundled = map[string][]byte{
	"GoRegular": goregular.TTF,
	"GoBold":    gobold.TTF,
	"GoMono":    gomono.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:GoMono" 或直接 "GoMono"；为空时返回默认字体。
func Load(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "embed:")
	if name == "" {
		name = Default
	}
	data, ok := bundled[name]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 可用字体 %s", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Names lists the bundled font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(bundled))
	for name := range bundled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
