package types

import (
	"errors"
	"testing"
)

// TestDefaultSpecValid 参考设计必须通过输入校验
func TestDefaultSpecValid(t *testing.T) {
	s := DefaultSpec()
	if err := s.Validate(); err != nil {
		t.Fatalf("参考设计校验失败: %v", err)
	}
	if !s.Star() {
		t.Error("参考设计应为星形连接")
	}
	if !s.Skewed() {
		t.Error("参考设计应为斜槽")
	}
}

// TestValidateRejects 非法参数逐项被拒绝且错误带字段名
func TestValidateRejects(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*MotorSpec)
	}{
		{"PN", func(s *MotorSpec) { s.PN = -15 }},
		{"m", func(s *MotorSpec) { s.M = 2 }},
		{"p", func(s *MotorSpec) { s.P = 0 }},
		{"cosfi", func(s *MotorSpec) { s.Cosfi = 1.2 }},
		{"eff", func(s *MotorSpec) { s.Eff = 1.0 }},
		{"Di1", func(s *MotorSpec) { s.Di1 = s.D1 + 10 }},
		{"g", func(s *MotorSpec) { s.G = 0 }},
		{"slot", func(s *MotorSpec) { s.Slot = SlotShape(9) }},
		{"steel", func(s *MotorSpec) { s.Steel = SteelGrade(9) }},
		{"sigma0", func(s *MotorSpec) { s.Sigma0 = 0.9 }},
		{"sks", func(s *MotorSpec) { s.Sks = "X" }},
		{"wgco", func(s *MotorSpec) { s.Wgco = "Z" }},
	}
	for _, c := range cases {
		s := DefaultSpec()
		c.mutate(&s)
		err := s.Validate()
		if err == nil {
			t.Errorf("字段 %s 非法值应被拒绝", c.field)
			continue
		}
		var ie *InvalidInputError
		if !errors.As(err, &ie) {
			t.Errorf("字段 %s 的错误类型应为 InvalidInputError: %T", c.field, err)
			continue
		}
		if ie.Field != c.field {
			t.Errorf("错误字段名不正确: 期望 %s，实际 %s", c.field, ie.Field)
		}
	}
}

// TestParseSteelGrade 牌号名称与枚举互相对应
func TestParseSteelGrade(t *testing.T) {
	for _, g := range SteelGrades() {
		got, err := ParseSteelGrade(g.String())
		if err != nil {
			t.Errorf("牌号 %s 解析失败: %v", g, err)
			continue
		}
		if got != g {
			t.Errorf("牌号解析不一致: %v != %v", got, g)
		}
	}
	if _, err := ParseSteelGrade("DW470-50"); err == nil {
		t.Error("未知牌号应返回错误")
	}
}

// TestParseSlotShape 槽型关键字与中文名称均可解析
func TestParseSlotShape(t *testing.T) {
	for _, s := range SlotShapes() {
		for _, name := range []string{s.Key(), s.String()} {
			got, err := ParseSlotShape(name)
			if err != nil {
				t.Errorf("槽型 %q 解析失败: %v", name, err)
				continue
			}
			if got != s {
				t.Errorf("槽型解析不一致: %v != %v", got, s)
			}
		}
	}
	if _, err := ParseSlotShape("trapezoid"); err == nil {
		t.Error("未知槽型应返回错误")
	}
}
