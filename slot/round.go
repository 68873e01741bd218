package slot

import (
	"math"

	"aspmsm/types"
)

// round 圆形槽：槽身为直径 Br1 的整圆
type round struct{}

func (round) Shape() types.SlotShape { return types.SlotRound }

// Area 圆面积
func (round) Area(d Dimensions) (float64, error) {
	return checkArea(math.Pi * d.Br1 * d.Br1 / 4)
}

// Permeance 圆形槽比漏磁导：圆槽常数加槽口项
func (round) Permeance(d Dimensions) (float64, error) {
	if d.B02 <= 0 {
		return 0, &types.GeometryError{Quantity: "圆形槽槽口宽度", Value: d.B02}
	}
	return 0.623 + d.H02/d.B02, nil
}

// ToothWidths 上下四分位取弦宽，槽中取直径
func (round) ToothWidths(d Dimensions, D2 float64, Q2 int) [3]float64 {
	chord := d.Br1 * math.Sqrt(3) / 2
	return toothWidths(d, D2, Q2, chord, d.Br1, chord)
}
