package vial_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ByLCY/keylegend/vial"
)

const sampleVil = `{
  "version": 1,
  "uid": 1234567890123,
  "layout": [
    [
      ["TO(0)", "KC_Q", "KC_W", "KC_E", "KC_R", "KC_T", "KC_PSCREEN"],
      ["TD(9)", "KC_A", "KC_S", "KC_D", "KC_F", "KC_G", "KC_TAB"],
      ["KC_LCTRL", "TD(2)", "TD(3)", "TD(4)", "TD(5)", "KC_B", -1],
      [-1, -1, -1, "KC_MHEN", "LT1(KC_SPACE)", "KC_LCTRL", -1]
    ],
    [
      ["KC_TRNS", "KC_1", "KC_2", "KC_3", "KC_4", "KC_5", "KC_TRNS"]
    ]
  ],
  "encoder_layout": [],
  "layout_options": -1,
  "vial_protocol": 6,
  "via_protocol": 9,
  "tap_dance": [
    ["KC_MINUS", "KC_RSHIFT", "KC_NO", "KC_NO", 200],
    ["KC_Z", "KC_LALT", "KC_NO", "KC_NO", 200]
  ],
  "combo": [["KC_NO", "KC_NO", "KC_NO", "KC_NO", "KC_NO"]],
  "key_override": [{"trigger": "KC_NO", "options": 7}],
  "settings": {"1": 1, "2": 0}
}`

func TestParseSample(t *testing.T) {
	cfg, err := vial.ParseString(sampleVil)
	require.NoError(t, err)

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, uint64(1234567890123), cfg.UID)
	require.Equal(t, -1, cfg.LayoutOptions)
	require.Equal(t, 6, cfg.VialProtocol)
	require.Equal(t, 9, cfg.ViaProtocol)
	require.Len(t, cfg.Layout, 2)
	require.Len(t, cfg.TapDance, 2)
	require.Len(t, cfg.KeyOverride, 1)
	require.NotEmpty(t, cfg.Settings)

	layer0 := cfg.Layer(0)
	require.Len(t, layer0, 4)
	require.Equal(t, vial.String("KC_A"), layer0[1][1])
	require.True(t, layer0[2][6].Absent())
	require.Equal(t, vial.KindNumber, cfg.TapDance[0][4].Kind)
	require.Nil(t, cfg.Layer(5))
}

func TestParseOptionalFieldsDefaultEmpty(t *testing.T) {
	cfg, err := vial.ParseString(`{"version":1,"uid":2,"layout":[],"layout_options":0,"vial_protocol":6,"via_protocol":9}`)
	require.NoError(t, err)
	require.Empty(t, cfg.Layout)
	require.Empty(t, cfg.TapDance)
	require.Empty(t, cfg.EncoderLayout)
	require.Empty(t, cfg.MacroData)
	require.Empty(t, cfg.Combo)
	require.Empty(t, cfg.KeyOverride)
	require.Empty(t, cfg.Settings)
}

func TestParseMissingRequiredField(t *testing.T) {
	for _, field := range []string{"version", "uid", "layout", "layout_options", "vial_protocol", "via_protocol"} {
		t.Run(field, func(t *testing.T) {
			doc := map[string]string{
				"version":        `"version":1`,
				"uid":            `"uid":2`,
				"layout":         `"layout":[]`,
				"layout_options": `"layout_options":0`,
				"vial_protocol":  `"vial_protocol":6`,
				"via_protocol":   `"via_protocol":9`,
			}
			delete(doc, field)
			parts := make([]string, 0, len(doc))
			for _, v := range doc {
				parts = append(parts, v)
			}
			_, err := vial.ParseString("{" + strings.Join(parts, ",") + "}")
			require.Error(t, err)

			var perr *vial.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, field, perr.Field)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := vial.ParseString(`{"version": 1,`)
	var perr *vial.ParseError
	require.True(t, errors.As(err, &perr))
	require.Empty(t, perr.Field)
}

func TestParseWrongShape(t *testing.T) {
	_, err := vial.ParseString(`{"version":"one","uid":2,"layout":[],"layout_options":0,"vial_protocol":6,"via_protocol":9}`)
	var perr *vial.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "version", perr.Field)
}

func TestTokenShapes(t *testing.T) {
	cfg, err := vial.ParseString(`{"version":1,"uid":2,"layout":[[["KC_A", 5, -1, null, {"x":1}, [1], true, 2.5]]],"layout_options":0,"vial_protocol":6,"via_protocol":9}`)
	require.NoError(t, err)
	row := cfg.Layer(0)[0]
	kinds := make([]vial.Kind, len(row))
	for i, tok := range row {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []vial.Kind{
		vial.KindString, vial.KindNumber, vial.KindNumber, vial.KindNull,
		vial.KindOther, vial.KindOther, vial.KindOther, vial.KindNumber,
	}, kinds)
	require.Equal(t, "5", row[1].Number.String())
	require.True(t, row[2].Absent())
	require.False(t, row[7].Absent())
}

func TestFields(t *testing.T) {
	cfg, err := vial.ParseString(sampleVil)
	require.NoError(t, err)
	fields := cfg.Fields()
	require.Equal(t, uint64(1234567890123), fields["uid"])
	require.Equal(t, 2, fields["layers"])
}
