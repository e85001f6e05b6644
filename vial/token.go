package vial

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind 区分布局单元格中可能出现的 JSON 形态。
type Kind int

const (
	KindNull   Kind = iota // null 或缺失
	KindString             // 键码字符串，如 "KC_A"、"TD(3)"
	KindNumber             // 数值，-1 表示物理上不存在的键
	KindOther              // 对象、数组、布尔值
)

// String returns the kind name used in debug output.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindOther:
		return "other"
	default:
		return "null"
	}
}

// Token 是单元格取值的封闭和类型：Kind 决定 Text/Number 中哪个字段有效。
type Token struct {
	Kind   Kind
	Text   string      // KindString
	Number json.Number // KindNumber，保留原始字面量
}

// String 构造字符串 token。
func String(s string) Token { return Token{Kind: KindString, Text: s} }

// Number 构造数值 token。
func Number(n int64) Token {
	return Token{Kind: KindNumber, Number: json.Number(strconv.FormatInt(n, 10))}
}

// Absent reports whether the token is the numeric -1 placeholder.
func (t Token) Absent() bool {
	if t.Kind != KindNumber {
		return false
	}
	n, err := t.Number.Int64()
	return err == nil && n == -1
}

// UnmarshalJSON accepts any well-formed JSON value.
func (t *Token) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = Token{Kind: KindNull}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Token{Kind: KindString, Text: s}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*t = Token{Kind: KindNumber, Number: n}
	default:
		// encoding/json 在调用前已校验整体语法
		*t = Token{Kind: KindOther}
	}
	return nil
}

// MarshalJSON writes the token back in its decoded shape; KindOther becomes null.
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindString:
		return json.Marshal(t.Text)
	case KindNumber:
		return []byte(t.Number.String()), nil
	default:
		return []byte("null"), nil
	}
}
