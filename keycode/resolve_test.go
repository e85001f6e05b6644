package keycode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/keylegend/keycode"
	"github.com/ByLCY/keylegend/vial"
)

func resolverWithTapDance(entries ...[]vial.Token) *keycode.Resolver {
	return keycode.NewResolver(&vial.Config{TapDance: entries})
}

func TestResolvePlainCodesFromTable(t *testing.T) {
	r := keycode.NewResolver(nil)
	cases := map[string]string{
		"KC_A":        "A",
		"KC_Q":        "Q",
		"KC_SPACE":    "Space",
		"KC_BSPACE":   "Bksp",
		"KC_LSHIFT":   "LShift",
		"KC_RGUI":     "RGui",
		"KC_CAPSLOCK": "Caps",
		"KC_SLASH":    "?/",
		"KC_COMMA":    ",",
		"KC_PSCREEN":  "Print\nScreen",
		"KC_MHEN":     "MHEN",
		"KC_F11":      "F11",
	}
	for code, want := range cases {
		got := r.Resolve(vial.String(code))
		if diff := cmp.Diff(keycode.Label{Primary: want}, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", code, diff)
		}
	}
}

func TestResolveUnknownCodeStripsPrefix(t *testing.T) {
	r := keycode.NewResolver(nil)
	for _, code := range []string{"KC_TRNS", "KC_NUMLOCK", "KC_KP_PLUS", "KC_"} {
		got := r.Resolve(vial.String(code))
		require.Equal(t, keycode.Label{Primary: code[len(keycode.CodePrefix):]}, got, code)
	}
}

func TestResolveNoCodeIsEmpty(t *testing.T) {
	got := keycode.NewResolver(nil).Resolve(vial.String("KC_NO"))
	require.True(t, got.Empty())
	require.False(t, got.Special)
}

func TestResolveNumbersAndShapes(t *testing.T) {
	r := keycode.NewResolver(nil)
	require.Equal(t, keycode.Label{}, r.Resolve(vial.Number(-1)))
	require.Equal(t, keycode.Label{Primary: "7"}, r.Resolve(vial.Number(7)))
	require.Equal(t, keycode.Label{Primary: "0"}, r.Resolve(vial.Number(0)))
	require.Equal(t, keycode.Label{}, r.Resolve(vial.Token{Kind: vial.KindNull}))
	require.Equal(t, keycode.Label{}, r.Resolve(vial.Token{Kind: vial.KindOther}))
}

func TestResolveTapDance(t *testing.T) {
	r := resolverWithTapDance(
		[]vial.Token{vial.String("KC_MINUS"), vial.String("KC_RSHIFT"), vial.String("KC_NO"), vial.String("KC_NO"), vial.Number(200)},
		[]vial.Token{vial.String("KC_TAB"), vial.String("MO(3)")},
		[]vial.Token{vial.String("KC_Z"), vial.String("KC_NO")},
		[]vial.Token{vial.String("KC_X")},
		[]vial.Token{vial.Number(4), vial.String("KC_LALT")},
		[]vial.Token{vial.String("KC_ESCAPE"), vial.String("KC_LCTRL")},
	)

	cases := []struct {
		token string
		want  keycode.Label
	}{
		{"TD(0)", keycode.Label{Primary: "-", Secondary: "RShift", Special: true}},
		{"TD(1)", keycode.Label{Primary: "Tab", Secondary: "MO3", Special: true}},
		{"TD(2)", keycode.Label{Primary: "TD(2)", Special: true}},
		{"TD(3)", keycode.Label{Primary: "TD(3)", Special: true}},
		{"TD(4)", keycode.Label{Primary: "TD(4)", Special: true}},
		// the reduced table degrades to prefix stripping
		{"TD(5)", keycode.Label{Primary: "ESCAPE", Secondary: "LCtrl", Special: true}},
		{"TD(6)", keycode.Label{Primary: "TD(6)", Special: true}},
		{"TD(99)", keycode.Label{Primary: "TD(99)", Special: true}},
		{"TD(x)", keycode.Label{Primary: "TD(x)", Special: true}},
		{"TD( 1)", keycode.Label{Primary: "TD( 1)", Special: true}},
		{"TD(1))", keycode.Label{Primary: "Tab", Secondary: "MO3", Special: true}},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got := r.Resolve(vial.String(tc.token))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveTapDanceOutOfRange(t *testing.T) {
	got := keycode.NewResolver(&vial.Config{}).Resolve(vial.String("TD(0)"))
	require.Equal(t, keycode.Label{Primary: "TD(0)", Special: true}, got)
}

func TestResolveLayerTap(t *testing.T) {
	r := keycode.NewResolver(nil)
	require.Equal(t,
		keycode.Label{Primary: "SPACE", Secondary: "LT1", Special: true},
		r.Resolve(vial.String("LT1(KC_SPACE)")))
	require.Equal(t,
		keycode.Label{Primary: "TAB", Secondary: "LT3", Special: true},
		r.Resolve(vial.String("LT3(KC_TAB)")))
	require.Equal(t,
		keycode.Label{Primary: "LT(1, A)", Special: true},
		r.Resolve(vial.String("LT(1, A)")))
	require.Equal(t,
		keycode.Label{Primary: "LT1(KC_A(KC_B))", Special: true},
		r.Resolve(vial.String("LT1(KC_A(KC_B))")))
}

func TestResolveLayerSwitchAndOpaque(t *testing.T) {
	r := keycode.NewResolver(nil)
	require.Equal(t, keycode.Label{Primary: "TO(0)", Special: true}, r.Resolve(vial.String("TO(0)")))
	require.Equal(t, keycode.Label{Primary: "MO(3)"}, r.Resolve(vial.String("MO(3)")))
	require.Equal(t, keycode.Label{Primary: "LSFT(KC_1)"}, r.Resolve(vial.String("LSFT(KC_1)")))
	require.Equal(t, keycode.Label{}, r.Resolve(vial.String("")))
}

func TestClassifyPrecedence(t *testing.T) {
	cases := map[string]keycode.Class{
		"KC_A":          keycode.PlainCode,
		"KC_TD(1)":      keycode.PlainCode,
		"TD(1)":         keycode.TapDance,
		"LT1(KC_SPACE)": keycode.LayerTap,
		"LTD(1)":        keycode.LayerTap,
		"TO(2)":         keycode.LayerSwitch,
		"TO":            keycode.Opaque,
		"MO(1)":         keycode.Opaque,
	}
	for token, want := range cases {
		require.Equal(t, want, keycode.Classify(token), token)
	}
}

func TestParseTapDance(t *testing.T) {
	idx, ok := keycode.ParseTapDance("TD(12)")
	require.True(t, ok)
	require.Equal(t, 12, idx)

	for _, bad := range []string{"TD()", "TD(1", "TD(-1)", "TD(1)x", "TD(99999999999999999999)"} {
		_, ok := keycode.ParseTapDance(bad)
		require.False(t, ok, bad)
	}
}
