package types

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML 支持按牌号名称（"DW315-50"）或编号（1~5）配置硅钢片
func (g *SteelGrade) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err == nil {
		if n, err := strconv.Atoi(name); err == nil {
			grade := SteelGrade(n)
			if !grade.Valid() {
				return fmt.Errorf("未知的硅钢片编号 %d", n)
			}
			*g = grade
			return nil
		}
		grade, err := ParseSteelGrade(name)
		if err != nil {
			return err
		}
		*g = grade
		return nil
	}
	return fmt.Errorf("硅钢片牌号配置格式错误（第 %d 行）", node.Line)
}

// MarshalYAML 导出牌号名称
func (g SteelGrade) MarshalYAML() (any, error) { return g.String(), nil }

// UnmarshalYAML 支持按关键字（"pear"）、中文名称或编号（1~4）配置槽型
func (s *SlotShape) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err == nil {
		if n, err := strconv.Atoi(name); err == nil {
			shape := SlotShape(n)
			if !shape.Valid() {
				return fmt.Errorf("未知的槽型编号 %d", n)
			}
			*s = shape
			return nil
		}
		shape, err := ParseSlotShape(name)
		if err != nil {
			return err
		}
		*s = shape
		return nil
	}
	return fmt.Errorf("槽型配置格式错误（第 %d 行）", node.Line)
}

// MarshalYAML 导出槽型关键字
func (s SlotShape) MarshalYAML() (any, error) { return s.Key(), nil }
