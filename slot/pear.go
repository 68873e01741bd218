package slot

import (
	"math"

	"aspmsm/types"
)

// pear 梨形槽：槽肩渐开至全宽，槽身上下两段梯形
type pear struct{}

func (pear) Shape() types.SlotShape { return types.SlotPear }

// Area 上下两段梯形面积之和
func (pear) Area(d Dimensions) (float64, error) {
	hr1 := d.shoulder()
	hr2 := d.Hr12 - hr1
	if hr2 < 0 {
		return 0, &types.GeometryError{Quantity: "梨形槽槽身高度（槽肩高于槽身）", Value: hr2}
	}
	area := (d.B02+d.Br1)*hr1/2 + (d.Br1+d.Br2)*hr2/2
	return checkArea(area)
}

// Permeance 梨形槽比漏磁导
// 槽宽比接近 1 时退化为等宽槽公式，否则使用修正系数公式
func (pear) Permeance(d Dimensions) (float64, error) {
	if d.Br1 <= 0 || d.B02 <= 0 {
		return 0, &types.GeometryError{Quantity: "梨形槽槽宽", Value: d.Br1}
	}
	b12 := d.Br2 / d.Br1
	q := permQSX
	if math.Abs(b12-1.0) <= 1e-4 {
		num := 4.0*q*q*q/3.0 + 3.0*math.Pi*q*q/2.0 + 4.816*q + 1.5377
		den := 2.0*q + math.Pi/2.0
		return num/(den*den) + d.H02/d.B02, nil
	}
	den := math.Pi*(1.0+b12*b12)/(8.0*q) + (1.0+b12)/2.0
	return q*(permKRS1+permKRS2+permKRS3)/(den*den) + d.H02/d.B02, nil
}

// ToothWidths 槽顶取上部宽、槽底取下部宽
func (pear) ToothWidths(d Dimensions, D2 float64, Q2 int) [3]float64 {
	return toothWidths(d, D2, Q2, d.Br1, (d.Br1+d.Br2)/2, d.Br2)
}
