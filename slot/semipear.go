package slot

import (
	"math"

	"aspmsm/types"
)

// semiPear 半梨形槽：平行槽身收口于半圆槽底
type semiPear struct{}

func (semiPear) Shape() types.SlotShape { return types.SlotSemiPear }

// Area 平行段矩形加半圆槽底
func (semiPear) Area(d Dimensions) (float64, error) {
	straight := d.Hr12 - d.Br2/2
	if straight < 0 {
		return 0, &types.GeometryError{Quantity: "半梨形槽平行段高度", Value: straight}
	}
	area := d.Br1*straight + math.Pi*d.Br2*d.Br2/8
	return checkArea(area)
}

// Permeance 半梨形槽比漏磁导
func (semiPear) Permeance(d Dimensions) (float64, error) {
	if d.Br1 <= 0 || d.B02 <= 0 {
		return 0, &types.GeometryError{Quantity: "半梨形槽槽宽", Value: d.Br1}
	}
	h2 := d.Hr12
	h22 := d.Hr12 / 2
	return h2/d.Br1 + 2.0*h22/(3.0*(d.Br1+d.Br2)) + d.H02/d.B02, nil
}

// ToothWidths 平行段等宽，槽底取圆弧直径
func (semiPear) ToothWidths(d Dimensions, D2 float64, Q2 int) [3]float64 {
	return toothWidths(d, D2, Q2, d.Br1, d.Br1, d.Br2)
}
