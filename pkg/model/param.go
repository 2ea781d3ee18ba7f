package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParamKind 参数值类型
type ParamKind int

const (
	ParamAbsent ParamKind = iota // 缺失或null
	ParamNumber
	ParamString
	ParamBool
)

// Param 候选项参数值（带类型标签的标量）
type Param struct {
	kind ParamKind
	num  float64
	str  string
	b    bool
}

// NumberParam 构造数值参数
func NumberParam(v float64) Param {
	return Param{kind: ParamNumber, num: v}
}

// StringParam 构造字符串参数
func StringParam(s string) Param {
	return Param{kind: ParamString, str: s}
}

// BoolParam 构造布尔参数
func BoolParam(b bool) Param {
	return Param{kind: ParamBool, b: b}
}

// Kind 返回参数类型
func (p Param) Kind() ParamKind {
	return p.kind
}

// IsAbsent 检查参数是否缺失
func (p Param) IsAbsent() bool {
	return p.kind == ParamAbsent
}

// Number 将参数解释为数值；接受数值、数字字符串和布尔值
func (p Param) Number() (float64, bool) {
	switch p.kind {
	case ParamNumber:
		return p.num, true
	case ParamString:
		v, err := strconv.ParseFloat(strings.TrimSpace(p.str), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case ParamBool:
		if p.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Text 将参数解释为非空文本；用于分组键
func (p Param) Text() (string, bool) {
	switch p.kind {
	case ParamString:
		if p.str == "" {
			return "", false
		}
		return p.str, true
	case ParamNumber:
		if p.num == 0 {
			return "", false
		}
		return strconv.FormatFloat(p.num, 'f', -1, 64), true
	case ParamBool:
		if !p.b {
			return "", false
		}
		return "true", true
	default:
		return "", false
	}
}

// UnmarshalJSON 实现json.Unmarshaler
func (p *Param) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = Param{}
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*p = NumberParam(v)
	case string:
		*p = StringParam(v)
	case bool:
		*p = BoolParam(v)
	default:
		return fmt.Errorf("参数值必须是标量，实际为 %T", raw)
	}
	return nil
}

// MarshalJSON 实现json.Marshaler
func (p Param) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case ParamNumber:
		return json.Marshal(p.num)
	case ParamString:
		return json.Marshal(p.str)
	case ParamBool:
		return json.Marshal(p.b)
	default:
		return []byte("null"), nil
	}
}

// Params 候选项参数集合
type Params map[string]Param

// Get 获取参数值，缺失时返回absent
func (ps Params) Get(key string) Param {
	if ps == nil {
		return Param{}
	}
	return ps[key]
}

// Grouping 获取分组键值，缺失或空值时返回fallback
func (ps Params) Grouping(key, fallback string) string {
	if text, ok := ps.Get(key).Text(); ok {
		return text
	}
	return fallback
}
