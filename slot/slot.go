// Package slot 转子槽型几何模型
// 四种槽型为固定集合，每种槽型给出槽截面积、比漏磁导与齿宽三件套，
// 全部实现为无状态纯函数，可被并发计算共享
package slot

import (
	"math"

	"aspmsm/types"
)

// Dimensions 转子槽尺寸（全部 mm，斜角为度）
type Dimensions struct {
	B02   float64 // 槽口宽度
	H02   float64 // 槽口高度
	Br1   float64 // 槽身上部宽度
	Br2   float64 // 槽身下部宽度
	Hr12  float64 // 槽身高度
	Alfa2 float64 // 槽斜角
}

// FromSpec 从设计参数提取转子槽尺寸
func FromSpec(s *types.MotorSpec) Dimensions {
	return Dimensions{
		B02: s.B02, H02: s.H02,
		Br1: s.Br1, Br2: s.Br2,
		Hr12: s.Hr12, Alfa2: s.Alfa2,
	}
}

// shoulder 槽肩高度：槽口到槽身全宽处的过渡段
func (d Dimensions) shoulder() float64 {
	return (d.Br1 - d.B02) * math.Tan(d.Alfa2*math.Pi/180) / 2
}

// Geometry 槽型几何策略
// 面积与漏磁导供磁路与阻抗阶段使用，齿宽供齿磁密计算使用
type Geometry interface {
	Shape() types.SlotShape
	// Area 槽截面积 mm²，尺寸不可行时返回 GeometryError
	Area(d Dimensions) (float64, error)
	// Permeance 槽比漏磁导（经验公式，按槽族各不相同）
	Permeance(d Dimensions) (float64, error)
	// ToothWidths 齿宽 mm，依次为槽顶、槽中、槽底三个径向位置
	// D2 为转子外径 mm，Q2 为转子槽数
	ToothWidths(d Dimensions, D2 float64, Q2 int) [3]float64
}

// 槽漏磁导经验公式的修正系数（参考设计程序取值）
const (
	permQSX  = 1.0 // 槽形折算参数
	permKRS1 = 0.5
	permKRS2 = 0.3
	permKRS3 = 0.2
)

var geometries = map[types.SlotShape]Geometry{
	types.SlotPear:       pear{},
	types.SlotSemiPear:   semiPear{},
	types.SlotRound:      round{},
	types.SlotBevelRound: bevelRound{},
}

// ForShape 按槽型取几何策略
func ForShape(s types.SlotShape) (Geometry, error) {
	g, ok := geometries[s]
	if !ok {
		return nil, &types.GeometryError{Quantity: "槽型编号", Value: float64(s)}
	}
	return g, nil
}

// toothAt 指定径向深度处的齿宽：齿距减去该深度处的槽宽
func toothAt(D2 float64, Q2 int, depth, slotWidth float64) float64 {
	return math.Pi*(D2-2*depth)/float64(Q2) - slotWidth
}

// toothWidths 按三个深度处的槽宽计算齿宽三件套
func toothWidths(d Dimensions, D2 float64, Q2 int, wTop, wMid, wBot float64) [3]float64 {
	return [3]float64{
		toothAt(D2, Q2, d.H02, wTop),
		toothAt(D2, Q2, d.H02+d.Hr12/2, wMid),
		toothAt(D2, Q2, d.H02+d.Hr12, wBot),
	}
}

// checkArea 面积必须为正，否则该尺寸组合不可行
func checkArea(area float64) (float64, error) {
	if area <= 0 || math.IsNaN(area) {
		return 0, &types.GeometryError{Quantity: "转子槽面积", Value: area}
	}
	return area, nil
}
