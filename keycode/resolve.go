// Package keycode turns Vial key-function tokens into legend labels.
//
// Resolution never fails: unknown or malformed tokens degrade to a visible
// fallback string so that a legend can always be produced.
package keycode

import (
	"fmt"

	"github.com/ByLCY/keylegend/vial"
)

// Label is the text drawn on one key.
type Label struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Special   bool   `json:"special"`
}

// HasSecondary reports whether a second (hold/layer) line is drawn.
func (l Label) HasSecondary() bool { return l.Secondary != "" }

// Empty reports whether the key renders without text.
func (l Label) Empty() bool { return l.Primary == "" }

// Resolver resolves tokens against one configuration's tap-dance list.
type Resolver struct {
	tapDance [][]vial.Token
}

// NewResolver creates a resolver for cfg; a nil cfg has no tap dances.
func NewResolver(cfg *vial.Config) *Resolver {
	r := &Resolver{}
	if cfg != nil {
		r.tapDance = cfg.TapDance
	}
	return r
}

// Resolve maps a layout cell to its label.
func (r *Resolver) Resolve(tok vial.Token) Label {
	switch tok.Kind {
	case vial.KindString:
		return r.resolveString(tok.Text)
	case vial.KindNumber:
		if tok.Absent() {
			return Label{}
		}
		return Label{Primary: tok.Number.String()}
	default:
		return Label{}
	}
}

func (r *Resolver) resolveString(s string) Label {
	switch Classify(s) {
	case PlainCode:
		return Label{Primary: CodeText(s)}
	case TapDance:
		return r.resolveTapDance(s)
	case LayerTap:
		layer, key, ok := SplitLayerTap(s)
		if !ok {
			return Label{Primary: s, Special: true}
		}
		return Label{Primary: key, Secondary: layer, Special: true}
	case LayerSwitch:
		return Label{Primary: s, Special: true}
	default:
		return Label{Primary: s}
	}
}

func (r *Resolver) resolveTapDance(s string) Label {
	idx, ok := ParseTapDance(s)
	if !ok || idx >= len(r.tapDance) || len(r.tapDance[idx]) < 2 {
		return Label{Primary: s, Special: true}
	}
	entry := r.tapDance[idx]
	tap := tapDanceText(entry[0].Text)
	hold := tapDanceText(entry[1].Text)
	if tap == "" || hold == "" {
		return Label{Primary: fmt.Sprintf("TD(%d)", idx), Special: true}
	}
	return Label{Primary: tap, Secondary: hold, Special: true}
}
