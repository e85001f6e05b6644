package keycode

import "strings"

// CodePrefix marks a basic keystroke token.
const CodePrefix = "KC_"

// NoCode is the no-op keystroke; it renders as an empty key.
const NoCode = "KC_NO"

// codeLabels maps basic keystroke codes to legend text.
var codeLabels = map[string]string{
	// letters
	"KC_A": "A", "KC_B": "B", "KC_C": "C", "KC_D": "D", "KC_E": "E",
	"KC_F": "F", "KC_G": "G", "KC_H": "H", "KC_I": "I", "KC_J": "J",
	"KC_K": "K", "KC_L": "L", "KC_M": "M", "KC_N": "N", "KC_O": "O",
	"KC_P": "P", "KC_Q": "Q", "KC_R": "R", "KC_S": "S", "KC_T": "T",
	"KC_U": "U", "KC_V": "V", "KC_W": "W", "KC_X": "X", "KC_Y": "Y",
	"KC_Z": "Z",

	// digits
	"KC_1": "1", "KC_2": "2", "KC_3": "3", "KC_4": "4", "KC_5": "5",
	"KC_6": "6", "KC_7": "7", "KC_8": "8", "KC_9": "9", "KC_0": "0",

	// whitespace and editing
	"KC_SPACE":  "Space",
	"KC_ENTER":  "Enter",
	"KC_TAB":    "Tab",
	"KC_BSPACE": "Bksp",
	"KC_ESCAPE": "Esc",
	"KC_ESC":    "Esc",
	"KC_DELETE": "Del",
	"KC_INSERT": "Ins",

	// modifiers
	"KC_LSHIFT":   "LShift",
	"KC_RSHIFT":   "RShift",
	"KC_LCTRL":    "LCtrl",
	"KC_RCTRL":    "RCtrl",
	"KC_LALT":     "LAlt",
	"KC_RALT":     "RAlt",
	"KC_LGUI":     "LGui",
	"KC_RGUI":     "RGui",
	"KC_CAPSLOCK": "Caps",

	// punctuation
	"KC_SLASH": "?/",
	"KC_COMMA": ",",
	"KC_DOT":   ".",
	"KC_MINUS": "-",

	// navigation
	"KC_HOME":   "Home",
	"KC_END":    "End",
	"KC_PGUP":   "PgUp",
	"KC_PGDOWN": "PgDn",
	"KC_UP":     "↑",
	"KC_DOWN":   "↓",
	"KC_LEFT":   "←",
	"KC_RIGHT":  "→",

	// function row
	"KC_F1": "F1", "KC_F2": "F2", "KC_F3": "F3", "KC_F4": "F4",
	"KC_F5": "F5", "KC_F6": "F6", "KC_F7": "F7", "KC_F8": "F8",
	"KC_F9": "F9", "KC_F10": "F10", "KC_F11": "F11", "KC_F12": "F12",

	"KC_PSCREEN": "Print\nScreen",
	"KC_MHEN":    "MHEN",
	NoCode:       "",
}

// tapDanceLabels is the reduced table applied to tap-dance sub-tokens.
var tapDanceLabels = map[string]string{
	"KC_MINUS":  "-",
	"KC_RSHIFT": "RShift",
	"KC_TAB":    "Tab",
	"MO(3)":     "MO3",
	"KC_Z":      "Z",
	"KC_LALT":   "LAlt",
	"KC_X":      "X",
	"KC_LGUI":   "LGui",
	"KC_C":      "C",
	"KC_LCTRL":  "LCtrl",
	"KC_V":      "V",
	"KC_LSHIFT": "LShift",
	"KC_M":      "M",
	"KC_COMMA":  ",",
	"KC_RCTRL":  "RCtrl",
	"KC_DOT":    ".",
	"KC_RGUI":   "RGui",
	NoCode:      "",
}

// CodeText returns the legend text of a basic keystroke code.
// Unknown codes fall back to the code with its prefix stripped.
func CodeText(code string) string {
	if text, ok := codeLabels[code]; ok {
		return text
	}
	return stripPrefix(code)
}

func tapDanceText(code string) string {
	if text, ok := tapDanceLabels[code]; ok {
		return text
	}
	return stripPrefix(code)
}

// stripPrefix removes every occurrence of the prefix, e.g. "KC_NUMLOCK" → "NUMLOCK".
func stripPrefix(code string) string {
	return strings.ReplaceAll(code, CodePrefix, "")
}
