// Package legend computes where and how every key of layer 0 is drawn.
package legend

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/keylegend/geometry"
	"github.com/ByLCY/keylegend/keycode"
	"github.com/ByLCY/keylegend/vial"
)

// renderedLayer 只渲染默认层。
const renderedLayer = 0

// Build 根据配置与几何表生成图例；配置网格与几何表中任一侧缺失的单元格都会被跳过。
func Build(cfg *vial.Config, grid geometry.Grid, opts Options) (*Sheet, error) {
	if cfg == nil {
		return nil, fmt.Errorf("legend: 配置为空")
	}
	width, height := geometry.CanvasSize(opts.Margin)
	sheet := &Sheet{
		Width:      width,
		Height:     height,
		Background: opts.Palette.Background,
		Source: Source{
			Version: cfg.Version,
			UID:     cfg.UID,
			Layers:  len(cfg.Layout),
		},
	}

	resolver := keycode.NewResolver(cfg)
	for row, cells := range cfg.Layer(renderedLayer) {
		for col, tok := range cells {
			rect := grid.At(row, col)
			if rect == nil {
				continue
			}
			label := resolver.Resolve(tok)
			sheet.Keys = append(sheet.Keys, composeKey(row, col, *rect, label, opts))
		}
	}
	return sheet, nil
}

func composeKey(row, col int, rect geometry.Rect, label keycode.Label, opts Options) Key {
	swatch := pickSwatch(label, opts.Palette)
	key := Key{
		Row:    row,
		Col:    col,
		Rect:   rect,
		Label:  label,
		Fill:   swatch.Fill,
		Border: swatch.Border,
	}
	if label.Empty() {
		return key
	}

	m := opts.Metrics
	mainColor := opts.Palette.Text
	if label.Special {
		mainColor = opts.Palette.Accent
	}
	scale := PrimaryScale(label, m)
	startY := rect.Y + m.TextTop
	for i, line := range strings.Split(label.Primary, "\n") {
		key.Texts = append(key.Texts, TextBox{
			Content: line,
			X:       centeredX(rect, line, scale, m),
			Y:       math.Trunc(startY + float64(i)*m.LinePitch),
			Scale:   scale,
			Color:   mainColor,
			Role:    RolePrimary,
		})
	}

	if label.HasSecondary() {
		key.Texts = append(key.Texts, TextBox{
			Content: label.Secondary,
			X:       centeredX(rect, label.Secondary, m.SecondaryScale, m),
			Y:       math.Trunc(rect.Y + rect.Height*m.SecondaryAt),
			Scale:   m.SecondaryScale,
			Color:   opts.Palette.Secondary,
			Role:    RoleSecondary,
		})
	}
	return key
}

func pickSwatch(label keycode.Label, p Palette) Swatch {
	switch {
	case label.Empty():
		return p.Empty
	case label.Special:
		return p.Special
	default:
		return p.Normal
	}
}

// PrimaryScale picks the pixel size of the primary text: largest for a
// single character, smallest for long text, mid-size above a secondary line.
func PrimaryScale(label keycode.Label, m Metrics) float64 {
	n := utf8.RuneCountInString(label.Primary)
	switch {
	case n == 1:
		return m.SingleScale
	case n > m.LongThreshold:
		return m.LongScale
	case label.HasSecondary():
		return m.PairedScale
	default:
		return m.DefaultScale
	}
}

// EstimateWidth approximates the rendered width of one line.
func EstimateWidth(line string, scale float64, m Metrics) float64 {
	count := float64(utf8.RuneCountInString(line))
	switch {
	case allRunes(line, isUpperOrDigit):
		return count * scale * m.UpperWidth
	case allRunes(line, isLower):
		return count * scale * m.LowerWidth
	default:
		return count * scale * m.MixedWidth
	}
}

func centeredX(rect geometry.Rect, line string, scale float64, m Metrics) float64 {
	return math.Trunc(rect.X + (rect.Width-EstimateWidth(line, scale, m))/2)
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isUpperOrDigit(r rune) bool { return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
