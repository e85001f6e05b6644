// Package vial loads Vial keyboard configuration files (.vil).
package vial

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Config mirrors the top-level object of a .vil file.
type Config struct {
	Version       int               `json:"version"`
	UID           uint64            `json:"uid"`
	Layout        [][][]Token       `json:"layout"`
	EncoderLayout [][][]string      `json:"encoder_layout,omitempty"`
	LayoutOptions int               `json:"layout_options"`
	MacroData     [][]string        `json:"macro_data,omitempty"`
	VialProtocol  int               `json:"vial_protocol"`
	ViaProtocol   int               `json:"via_protocol"`
	TapDance      [][]Token         `json:"tap_dance,omitempty"`
	Combo         [][]string        `json:"combo,omitempty"`
	KeyOverride   []json.RawMessage `json:"key_override,omitempty"`
	Settings      json.RawMessage   `json:"settings,omitempty"`
}

// requiredFields 缺失任意一项即视为解析失败。
var requiredFields = []string{
	"version",
	"uid",
	"layout",
	"layout_options",
	"vial_protocol",
	"via_protocol",
}

// ParseError reports malformed JSON or a missing/mistyped required field.
type ParseError struct {
	Field string // 为空表示整体语法错误
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		if e.Err == nil {
			return fmt.Sprintf("vil: 缺少必填字段 %q", e.Field)
		}
		return fmt.Sprintf("vil: 字段 %q 类型错误: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("vil: 解析失败: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse 从 io.Reader 读取并解析 .vil 内容。
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseString parses .vil content from a string.
func ParseString(input string) (*Config, error) {
	return ParseBytes([]byte(input))
}

// ParseBytes 解析 .vil 内容；可选字段缺失时保持零值（空切片/空对象）。
func ParseBytes(data []byte) (*Config, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &ParseError{Err: err}
	}
	for _, name := range requiredFields {
		raw, ok := fields[name]
		if !ok || strings.TrimSpace(string(raw)) == "null" {
			return nil, &ParseError{Field: name}
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Field: typeErr.Field, Err: err}
		}
		return nil, &ParseError{Err: err}
	}
	return &cfg, nil
}

// Layer 返回第 i 层的按行网格；越界时返回 nil。
func (c *Config) Layer(i int) [][]Token {
	if c == nil || i < 0 || i >= len(c.Layout) {
		return nil
	}
	return c.Layout[i]
}

// Fields exposes scalar metadata for output path interpolation.
func (c *Config) Fields() map[string]any {
	if c == nil {
		return nil
	}
	return map[string]any{
		"version":        c.Version,
		"uid":            c.UID,
		"layers":         len(c.Layout),
		"layout_options": c.LayoutOptions,
		"vial_protocol":  c.VialProtocol,
		"via_protocol":   c.ViaProtocol,
	}
}
