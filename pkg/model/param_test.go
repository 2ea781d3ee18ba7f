package model

import (
	"encoding/json"
	"testing"
)

func TestParam_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind ParamKind
	}{
		{"数值", `12.5`, ParamNumber},
		{"整数", `7`, ParamNumber},
		{"字符串", `"S1"`, ParamString},
		{"布尔", `true`, ParamBool},
		{"null视为缺失", `null`, ParamAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Param
			if err := json.Unmarshal([]byte(tt.json), &p); err != nil {
				t.Fatalf("Unmarshal(%s) 失败: %v", tt.json, err)
			}
			if p.Kind() != tt.kind {
				t.Errorf("Kind() = %v, expected %v", p.Kind(), tt.kind)
			}
		})
	}

	t.Run("对象值报错", func(t *testing.T) {
		var p Param
		if err := json.Unmarshal([]byte(`{"a":1}`), &p); err == nil {
			t.Error("应该返回错误")
		}
	})
}

func TestParam_Number(t *testing.T) {
	tests := []struct {
		name     string
		param    Param
		expected float64
		ok       bool
	}{
		{"数值直接返回", NumberParam(15), 15, true},
		{"数字字符串", StringParam("15"), 15, true},
		{"带空白的数字字符串", StringParam("  42.5 "), 42.5, true},
		{"非数字字符串", StringParam("abc"), 0, false},
		{"空字符串", StringParam(""), 0, false},
		{"布尔true", BoolParam(true), 1, true},
		{"布尔false", BoolParam(false), 0, true},
		{"缺失", Param{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.param.Number()
			if ok != tt.ok || v != tt.expected {
				t.Errorf("Number() = (%v, %v), expected (%v, %v)", v, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestParams_Grouping(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{"字符串值", Params{"serviceId": StringParam("S1")}, "S1"},
		{"数值转文本", Params{"serviceId": NumberParam(5)}, "5"},
		{"空字符串回退", Params{"serviceId": StringParam("")}, "_"},
		{"零值回退", Params{"serviceId": NumberParam(0)}, "_"},
		{"缺失回退", Params{}, "_"},
		{"nil集合回退", nil, "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Grouping("serviceId", "_"); got != tt.expected {
				t.Errorf("Grouping() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestParam_RoundTrip(t *testing.T) {
	raw := `{"serviceId":"S1","gapMinutes":5,"urgent":true}`
	var params Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		t.Fatalf("Unmarshal失败: %v", err)
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("Marshal失败: %v", err)
	}

	var again Params
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("二次Unmarshal失败: %v", err)
	}
	if n, _ := again.Get("gapMinutes").Number(); n != 5 {
		t.Errorf("gapMinutes = %v, expected 5", n)
	}
	if s, _ := again.Get("serviceId").Text(); s != "S1" {
		t.Errorf("serviceId = %q, expected S1", s)
	}
}
