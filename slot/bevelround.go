package slot

import (
	"math"

	"aspmsm/types"
)

// bevelRound 斜肩圆槽：斜肩过渡至平行槽身，半圆槽底
type bevelRound struct{}

func (bevelRound) Shape() types.SlotShape { return types.SlotBevelRound }

// Area 斜肩梯形加平行段加半圆槽底
func (bevelRound) Area(d Dimensions) (float64, error) {
	hr1 := d.shoulder()
	straight := d.Hr12 - hr1 - d.Br2/2
	if straight < 0 {
		return 0, &types.GeometryError{Quantity: "斜肩圆槽平行段高度", Value: straight}
	}
	area := (d.B02+d.Br1)*hr1/2 + d.Br1*straight + math.Pi*d.Br2*d.Br2/8
	return checkArea(area)
}

// Permeance 斜肩圆槽比漏磁导
// 槽宽比接近 1 时退化为等宽槽公式，否则使用修正系数公式
func (bevelRound) Permeance(d Dimensions) (float64, error) {
	if d.Br1 <= 0 || d.B02 <= 0 {
		return 0, &types.GeometryError{Quantity: "斜肩圆槽槽宽", Value: d.Br1}
	}
	b12 := d.Br2 / d.Br1
	q := permQSX
	neck := d.H02/d.B02 + 2.0*d.Hr12/(d.B02+d.Br1)
	if math.Abs(b12-1.0) <= 1e-4 {
		num := math.Pi*math.Pi*q/16.0 + math.Pi*q*q/2.0 + 4.0*q*q*q/3.0
		den := 2.0*q + math.Pi/4.0
		return num/(den*den) + neck, nil
	}
	den := math.Pi/(8.0*q) + (1.0+b12)/2.0
	return q*(permKRS1+permKRS2)/(den*den) + neck, nil
}

// ToothWidths 槽顶取斜肩中宽，槽底取圆弧直径
func (bevelRound) ToothWidths(d Dimensions, D2 float64, Q2 int) [3]float64 {
	return toothWidths(d, D2, Q2, (d.B02+d.Br1)/2, d.Br1, d.Br2)
}
