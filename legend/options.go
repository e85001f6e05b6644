package legend

import "github.com/ByLCY/keylegend/geometry"

// Options 配置图例计算：外边距、配色与文本度量。
type Options struct {
	Margin  float64
	Palette Palette
	Metrics Metrics
}

// Swatch is a fill/border pair for one key state.
type Swatch struct {
	Fill   Color `json:"fill"`
	Border Color `json:"border"`
}

// Palette 按键状态三选一：空键最暗，特殊键偏蓝，其余为中性色。
type Palette struct {
	Background Color
	Empty      Swatch
	Special    Swatch
	Normal     Swatch
	Text       Color // 普通键主文本
	Accent     Color // 特殊键主文本
	Secondary  Color // 副文本
}

// Metrics holds the text sizing policy and the empirical glyph-width
// multipliers used to centre text without measuring it.
type Metrics struct {
	UpperWidth float64 // all uppercase letters or digits
	LowerWidth float64 // all lowercase letters
	MixedWidth float64

	SingleScale    float64 // one character
	LongScale      float64 // longer than LongThreshold
	PairedScale    float64 // primary drawn above a secondary line
	DefaultScale   float64
	SecondaryScale float64
	LongThreshold  int

	TextTop     float64 // first primary line, from the key top
	LinePitch   float64
	SecondaryAt float64 // fraction of key height
}

// DefaultPalette is the dark theme.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB(28, 28, 32),
		Empty:      Swatch{Fill: RGB(40, 42, 48), Border: RGB(50, 53, 61)},
		Special:    Swatch{Fill: RGB(45, 52, 70), Border: RGB(65, 73, 96)},
		Normal:     Swatch{Fill: RGB(52, 58, 70), Border: RGB(68, 76, 92)},
		Text:       RGB(240, 246, 252),
		Accent:     RGB(156, 220, 254),
		Secondary:  RGB(156, 163, 175),
	}
}

// DefaultMetrics returns the sizing policy tuned for 78×60 keys.
func DefaultMetrics() Metrics {
	return Metrics{
		UpperWidth:     0.65,
		LowerWidth:     0.55,
		MixedWidth:     0.6,
		SingleScale:    24,
		LongScale:      14,
		PairedScale:    20,
		DefaultScale:   18,
		SecondaryScale: 18,
		LongThreshold:  8,
		TextTop:        12,
		LinePitch:      16,
		SecondaryAt:    0.75,
	}
}

// DefaultOptions uses the dark palette and the default margin.
func DefaultOptions() Options {
	return Options{
		Margin:  geometry.DefaultMargin,
		Palette: DefaultPalette(),
		Metrics: DefaultMetrics(),
	}
}
