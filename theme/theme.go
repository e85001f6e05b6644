// Package theme loads optional HCL files that override the legend palette,
// the glyph-width multipliers and the bundled font.
//
// Attributes may reference the built-in palette through the defaults
// object, e.g. defaults.background or defaults.special_fill.
//
// Example:
//
//	background = "#1c1c20"
//	font       = "GoMono"
//
//	swatch "special" {
//	  fill   = "#2d3446"
//	  border = defaults.normal_border
//	}
//
//	text {
//	  accent = "#9cdcfe"
//	}
//
//	metrics {
//	  upper = 0.65
//	  lower = 0.55
//	  mixed = 0.6
//	}
package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tdewolff/canvas"
	"github.com/zclconf/go-cty/cty"

	"github.com/ByLCY/keylegend/fonts"
	"github.com/ByLCY/keylegend/legend"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Theme is the resolved set of overrides.
type Theme struct {
	Palette legend.Palette
	Metrics legend.Metrics
	Font    string
}

// fileRoot is the decoded shape of a theme file; every field is optional.
type fileRoot struct {
	Background *string       `hcl:"background,optional"`
	Font       *string       `hcl:"font,optional"`
	Swatches   []swatchBlock `hcl:"swatch,block"`
	Text       *textBlock    `hcl:"text,block"`
	Metrics    *metricsBlock `hcl:"metrics,block"`
}

type swatchBlock struct {
	Name   string  `hcl:"name,label"`
	Fill   *string `hcl:"fill,optional"`
	Border *string `hcl:"border,optional"`
}

type textBlock struct {
	Main      *string `hcl:"main,optional"`
	Accent    *string `hcl:"accent,optional"`
	Secondary *string `hcl:"secondary,optional"`
}

type metricsBlock struct {
	Upper *float64 `hcl:"upper,optional"`
	Lower *float64 `hcl:"lower,optional"`
	Mixed *float64 `hcl:"mixed,optional"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Palette: legend.DefaultPalette(),
		Metrics: legend.DefaultMetrics(),
		Font:    fonts.Default,
	}
}

// Options combines the theme with a margin into legend build options.
func (t Theme) Options(margin float64) legend.Options {
	return legend.Options{Margin: margin, Palette: t.Palette, Metrics: t.Metrics}
}

// Load reads a theme file; an empty path yields Default().
func Load(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("读取主题文件 %s 失败: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes theme source on top of Default().
func Parse(src []byte, filename string) (Theme, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Theme{}, fmt.Errorf("failed to parse theme %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return Theme{}, fmt.Errorf("failed to decode theme %s: %w", filename, diags)
	}

	t := Default()
	if err := t.apply(root); err != nil {
		return Theme{}, fmt.Errorf("主题 %s: %w", filename, err)
	}
	return t, nil
}

// evalContext exposes the default palette as the defaults object.
func evalContext() *hcl.EvalContext {
	p := legend.DefaultPalette()
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"background":     cty.StringVal(p.Background.Hex()),
				"empty_fill":     cty.StringVal(p.Empty.Fill.Hex()),
				"empty_border":   cty.StringVal(p.Empty.Border.Hex()),
				"special_fill":   cty.StringVal(p.Special.Fill.Hex()),
				"special_border": cty.StringVal(p.Special.Border.Hex()),
				"normal_fill":    cty.StringVal(p.Normal.Fill.Hex()),
				"normal_border":  cty.StringVal(p.Normal.Border.Hex()),
				"text":           cty.StringVal(p.Text.Hex()),
				"accent":         cty.StringVal(p.Accent.Hex()),
				"secondary":      cty.StringVal(p.Secondary.Hex()),
			}),
		},
	}
}

func (t *Theme) apply(root fileRoot) error {
	p := &t.Palette
	if err := setColor(&p.Background, root.Background, "background"); err != nil {
		return err
	}
	if root.Font != nil {
		if _, err := fonts.Load(*root.Font); err != nil {
			return err
		}
		t.Font = *root.Font
	}

	for _, sw := range root.Swatches {
		var target *legend.Swatch
		switch sw.Name {
		case "empty":
			target = &p.Empty
		case "special":
			target = &p.Special
		case "normal":
			target = &p.Normal
		default:
			return fmt.Errorf("未知的 swatch %q（可选 empty、special、normal）", sw.Name)
		}
		if err := setColor(&target.Fill, sw.Fill, sw.Name+".fill"); err != nil {
			return err
		}
		if err := setColor(&target.Border, sw.Border, sw.Name+".border"); err != nil {
			return err
		}
	}

	if tb := root.Text; tb != nil {
		if err := setColor(&p.Text, tb.Main, "text.main"); err != nil {
			return err
		}
		if err := setColor(&p.Accent, tb.Accent, "text.accent"); err != nil {
			return err
		}
		if err := setColor(&p.Secondary, tb.Secondary, "text.secondary"); err != nil {
			return err
		}
	}

	if mb := root.Metrics; mb != nil {
		m := &t.Metrics
		for _, f := range []struct {
			dst  *float64
			src  *float64
			name string
		}{
			{&m.UpperWidth, mb.Upper, "metrics.upper"},
			{&m.LowerWidth, mb.Lower, "metrics.lower"},
			{&m.MixedWidth, mb.Mixed, "metrics.mixed"},
		} {
			if f.src == nil {
				continue
			}
			if *f.src <= 0 {
				return fmt.Errorf("%s 必须为正数", f.name)
			}
			*f.dst = *f.src
		}
	}
	return nil
}

func setColor(dst *legend.Color, src *string, name string) error {
	if src == nil {
		return nil
	}
	if !hexPattern.MatchString(*src) {
		return fmt.Errorf("%s: 无效的颜色 %q", name, *src)
	}
	c := canvas.Hex(*src)
	*dst = legend.RGB(c.R, c.G, c.B)
	return nil
}
