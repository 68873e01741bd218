package types

import "fmt"

// SteelGrade 硅钢片牌号
type SteelGrade int

// 支持的硅钢片牌号（固定集合，对应材料库数据表）
const (
	GradeDR510 SteelGrade = iota + 1 // DR510-50
	GradeDR420                       // DR420-50
	GradeDR490                       // DR490-50
	GradeDR550                       // DR550-50
	GradeDW315                       // DW315-50
)

var steelNames = map[SteelGrade]string{
	GradeDR510: "DR510-50",
	GradeDR420: "DR420-50",
	GradeDR490: "DR490-50",
	GradeDR550: "DR550-50",
	GradeDW315: "DW315-50",
}

// String 牌号名称
func (g SteelGrade) String() string {
	if name, ok := steelNames[g]; ok {
		return name
	}
	return fmt.Sprintf("SteelGrade(%d)", int(g))
}

// Valid 是否为已知牌号
func (g SteelGrade) Valid() bool {
	_, ok := steelNames[g]
	return ok
}

// ParseSteelGrade 按名称解析硅钢片牌号
func ParseSteelGrade(name string) (SteelGrade, error) {
	for g, n := range steelNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("未知的硅钢片牌号 %q", name)
}

// SteelGrades 全部已知牌号（按编号升序）
func SteelGrades() []SteelGrade {
	return []SteelGrade{GradeDR510, GradeDR420, GradeDR490, GradeDR550, GradeDW315}
}

// SlotShape 转子槽型
type SlotShape int

// 支持的转子槽型（固定集合，每种槽型一套经验漏磁导公式）
const (
	SlotPear       SlotShape = iota + 1 // 梨形槽
	SlotSemiPear                        // 半梨形槽
	SlotRound                           // 圆形槽
	SlotBevelRound                      // 斜肩圆槽
)

var slotNames = map[SlotShape]string{
	SlotPear:       "梨形槽",
	SlotSemiPear:   "半梨形槽",
	SlotRound:      "圆形槽",
	SlotBevelRound: "斜肩圆槽",
}

var slotKeys = map[SlotShape]string{
	SlotPear:       "pear",
	SlotSemiPear:   "semi-pear",
	SlotRound:      "round",
	SlotBevelRound: "bevel-round",
}

// String 槽型中文名称
func (s SlotShape) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SlotShape(%d)", int(s))
}

// Key 槽型配置关键字
func (s SlotShape) Key() string { return slotKeys[s] }

// Valid 是否为已知槽型
func (s SlotShape) Valid() bool {
	_, ok := slotNames[s]
	return ok
}

// ParseSlotShape 按关键字或中文名称解析槽型
func ParseSlotShape(name string) (SlotShape, error) {
	for s := range slotNames {
		if slotNames[s] == name || slotKeys[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("未知的槽型 %q", name)
}

// SlotShapes 全部已知槽型（按编号升序）
func SlotShapes() []SlotShape {
	return []SlotShape{SlotPear, SlotSemiPear, SlotRound, SlotBevelRound}
}

// Advisory 计算过程中的提示信息（例如查表越界后取边界值）
// 提示不会中断计算，随计算结果一并返回
type Advisory struct {
	Where   string // 产生提示的计算阶段
	Message string // 提示内容
}

// String 格式化输出
func (a Advisory) String() string { return fmt.Sprintf("[%s] %s", a.Where, a.Message) }
