package legend

// 该文件定义图例计算结果，供渲染器与调试 JSON 共用。

import (
	"fmt"

	"github.com/ByLCY/keylegend/geometry"
	"github.com/ByLCY/keylegend/keycode"
)

// Sheet 是一次渲染所需的全部绘制信息（单位：像素）。
type Sheet struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background Color  `json:"background"`
	Keys       []Key  `json:"keys"`
	Source     Source `json:"source"`
}

// Source 记录生成该图例的配置元信息。
type Source struct {
	Version int    `json:"version"`
	UID     uint64 `json:"uid"`
	Layers  int    `json:"layers"`
}

// Key 是一个已着色、已排版的键位。
type Key struct {
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Rect   geometry.Rect `json:"rect"`
	Label  keycode.Label `json:"label"`
	Fill   Color         `json:"fill"`
	Border Color         `json:"border"`
	Texts  []TextBox     `json:"texts,omitempty"`
}

// TextRole 区分主文本与副文本。
type TextRole string

const (
	RolePrimary   TextRole = "primary"
	RoleSecondary TextRole = "secondary"
)

// TextBox 表示一行已定位的文本；Y 为文本行顶部，Scale 为像素字号。
type TextBox struct {
	Content string   `json:"content"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Scale   float64  `json:"scale"`
	Color   Color    `json:"color"`
	Role    TextRole `json:"role"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB is shorthand for a Color literal.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Hex formats the colour as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }
