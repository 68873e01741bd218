// Package steel 硅钢片材料库
// 提供 B-H 曲线双向查询与比损耗查询，数据表进程内只读共享：
// 首次查询时一次性构建，之后任意并发计算直接读取，无需加锁
package steel

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/interp"

	"aspmsm/types"
)

// table 单一牌号的插值器集合
type table struct {
	grade types.SteelGrade
	hOfB  interp.PiecewiseLinear   // B → H
	bOfH  interp.PiecewiseLinear   // H → B（反查，B-H 单调保证可逆）
	loss  []interp.PiecewiseLinear // 每个频率行一条 B → 比损耗曲线
}

var (
	buildOnce sync.Once
	tables    map[types.SteelGrade]*table
)

// build 构建全部牌号的插值器（仅执行一次）
func build() {
	tables = make(map[types.SteelGrade]*table, len(hData))
	for _, g := range types.SteelGrades() {
		t := &table{grade: g}
		if err := t.hOfB.Fit(bAxis, hData[g]); err != nil {
			panic(fmt.Errorf("steel: fit B-H curve for %s: %v", g, err))
		}
		if err := t.bOfH.Fit(hData[g], bAxis); err != nil {
			panic(fmt.Errorf("steel: fit H-B curve for %s: %v", g, err))
		}
		t.loss = make([]interp.PiecewiseLinear, len(freqAxis))
		row := make([]float64, len(bAxis))
		for i, f := range freqAxis {
			scale := math.Pow(f/50.0, lossFreqExponent)
			for j, p := range lossData[g] {
				row[j] = p * scale
			}
			if err := t.loss[i].Fit(bAxis, row); err != nil {
				panic(fmt.Errorf("steel: fit loss curve for %s at %gHz: %v", g, f, err))
			}
		}
		tables[g] = t
	}
}

func lookup(g types.SteelGrade) (*table, error) {
	buildOnce.Do(build)
	t, ok := tables[g]
	if !ok {
		return nil, fmt.Errorf("steel: unknown grade %d", int(g))
	}
	return t, nil
}

// clamp 把查询值限制在表域内；越界时返回 true
// 表外不做线性外推，避免出现非物理结果
func clamp(x, lo, hi float64) (float64, bool) {
	switch {
	case x < lo:
		return lo, true
	case x > hi:
		return hi, true
	}
	return x, false
}

// LookupH 按磁密查磁场强度 A/m
// clamped 为真表示 b 超出数据表范围，结果取边界值
func LookupH(g types.SteelGrade, b float64) (h float64, clamped bool, err error) {
	t, err := lookup(g)
	if err != nil {
		return 0, false, err
	}
	b, clamped = clamp(b, bAxis[0], bAxis[len(bAxis)-1])
	return t.hOfB.Predict(b), clamped, nil
}

// LookupB 按磁场强度反查磁密 T
// clamped 为真表示 h 超出数据表范围，结果取边界值
func LookupB(g types.SteelGrade, h float64) (b float64, clamped bool, err error) {
	t, err := lookup(g)
	if err != nil {
		return 0, false, err
	}
	row := hData[g]
	h, clamped = clamp(h, row[0], row[len(row)-1])
	return t.bOfH.Predict(h), clamped, nil
}

// SpecificLoss 按磁密与频率查比损耗 W/kg（B、f 两轴双线性插值）
// clamped 为真表示任一轴越界，对应轴取边界行/边界值
func SpecificLoss(g types.SteelGrade, b, f float64) (p float64, clamped bool, err error) {
	t, err := lookup(g)
	if err != nil {
		return 0, false, err
	}
	var cb, cf bool
	b, cb = clamp(b, bAxis[0], bAxis[len(bAxis)-1])
	f, cf = clamp(f, freqAxis[0], freqAxis[len(freqAxis)-1])
	clamped = cb || cf
	// 定位频率区间
	hi := 1
	for hi < len(freqAxis)-1 && freqAxis[hi] < f {
		hi++
	}
	lo := hi - 1
	pLo := t.loss[lo].Predict(b)
	pHi := t.loss[hi].Predict(b)
	w := (f - freqAxis[lo]) / (freqAxis[hi] - freqAxis[lo])
	return pLo + w*(pHi-pLo), clamped, nil
}

// Range 数据表磁密轴范围 T
func Range() (lo, hi float64) { return bAxis[0], bAxis[len(bAxis)-1] }
