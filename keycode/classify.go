package keycode

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Class is the token family a raw key-function string belongs to.
type Class int

const (
	Opaque      Class = iota // anything else, echoed verbatim
	PlainCode                // KC_*
	TapDance                 // TD(n)
	LayerTap                 // LTn(KC_*)
	LayerSwitch              // TO(n)
)

func (c Class) String() string {
	switch c {
	case PlainCode:
		return "plain"
	case TapDance:
		return "tap-dance"
	case LayerTap:
		return "layer-tap"
	case LayerSwitch:
		return "layer-switch"
	default:
		return "opaque"
	}
}

const (
	tapDancePrefix    = "TD("
	layerTapPrefix    = "LT"
	layerSwitchPrefix = "TO("
)

// Classify 按前缀判定 token 类别；优先级：KC_ → TD( → LT → TO( → 其他。
func Classify(s string) Class {
	switch {
	case strings.HasPrefix(s, CodePrefix):
		return PlainCode
	case strings.HasPrefix(s, tapDancePrefix):
		return TapDance
	case strings.HasPrefix(s, layerTapPrefix):
		return LayerTap
	case strings.HasPrefix(s, layerSwitchPrefix):
		return LayerSwitch
	default:
		return Opaque
	}
}

var (
	// 不省略空白：带空格的 TD( 3) 应视为无法解析。
	refLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Other", Pattern: `[^A-Za-z0-9_(),]+`},
	})

	tapDanceParser = participle.MustBuild[tapDanceRef](
		participle.Lexer(refLexer),
	)
)

// tapDanceRef is the grammar of a tap-dance reference such as "TD(12)".
// Repeated closing parentheses are tolerated.
type tapDanceRef struct {
	Index int `parser:"'TD' '(' @Int ')'+"`
}

// ParseTapDance extracts the tap-dance index from a "TD(n)" token.
func ParseTapDance(s string) (int, bool) {
	ref, err := tapDanceParser.ParseString("", s)
	if err != nil {
		return 0, false
	}
	return ref.Index, true
}

// SplitLayerTap splits "LT1(KC_SPACE)" into ("LT1", "SPACE") by literal
// substitution of the "(KC_" and ")" delimiters.
func SplitLayerTap(s string) (layer, key string, ok bool) {
	formatted := strings.ReplaceAll(s, "("+CodePrefix, "|")
	formatted = strings.ReplaceAll(formatted, ")", "")
	parts := strings.Split(formatted, "|")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
