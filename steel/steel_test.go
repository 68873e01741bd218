package steel

import (
	"math"
	"testing"

	"aspmsm/types"
)

// TestTableMonotonic 验证全部牌号数据表在 B、H 两个方向均严格单调递增
func TestTableMonotonic(t *testing.T) {
	for i := 1; i < len(bAxis); i++ {
		if bAxis[i] <= bAxis[i-1] {
			t.Fatalf("B 轴在第 %d 点不单调: %v <= %v", i, bAxis[i], bAxis[i-1])
		}
	}
	for _, g := range types.SteelGrades() {
		h := hData[g]
		if len(h) != len(bAxis) {
			t.Fatalf("%s H 数据点数不匹配: %d != %d", g, len(h), len(bAxis))
		}
		for i := 1; i < len(h); i++ {
			if h[i] <= h[i-1] {
				t.Errorf("%s H 数据在第 %d 点不单调", g, i)
			}
		}
		p := lossData[g]
		if len(p) != len(bAxis) {
			t.Fatalf("%s 损耗数据点数不匹配: %d != %d", g, len(p), len(bAxis))
		}
	}
}

// TestLookupRoundTrip 验证 LookupB(LookupH(B)) ≈ B（单调插值往返）
func TestLookupRoundTrip(t *testing.T) {
	for _, g := range types.SteelGrades() {
		for b := 0.45; b <= 2.15; b += 0.07 {
			h, clamped, err := LookupH(g, b)
			if err != nil {
				t.Fatalf("%s LookupH 出错: %v", g, err)
			}
			if clamped {
				t.Fatalf("%s B=%v 不应越界", g, b)
			}
			back, _, err := LookupB(g, h)
			if err != nil {
				t.Fatalf("%s LookupB 出错: %v", g, err)
			}
			if math.Abs(back-b) > 1e-9 {
				t.Errorf("%s 往返误差过大: B=%v -> H=%v -> B=%v", g, b, h, back)
			}
		}
	}
}

// TestLookupInterpolated 验证表内插值落在相邻表点之间
func TestLookupInterpolated(t *testing.T) {
	h, clamped, err := LookupH(types.GradeDW315, 1.025)
	if err != nil {
		t.Fatalf("LookupH 出错: %v", err)
	}
	if clamped {
		t.Fatal("表内查询不应标记越界")
	}
	// DW315-50: B=1.00 -> 355, B=1.05 -> 400
	if h <= 355 || h >= 400 {
		t.Errorf("插值结果超出相邻表点区间: %v", h)
	}
}

// TestLookupClamp 验证越界查询取边界值并返回越界标记
func TestLookupClamp(t *testing.T) {
	lo, hi := Range()
	h, clamped, err := LookupH(types.GradeDR510, hi+0.5)
	if err != nil {
		t.Fatalf("LookupH 出错: %v", err)
	}
	if !clamped {
		t.Error("超出表上界应返回越界标记")
	}
	hEdge, _, _ := LookupH(types.GradeDR510, hi)
	if h != hEdge {
		t.Errorf("越界结果应取边界值: %v != %v", h, hEdge)
	}
	b, clamped, err := LookupB(types.GradeDR510, 1.0)
	if err != nil {
		t.Fatalf("LookupB 出错: %v", err)
	}
	if !clamped || b != lo {
		t.Errorf("H 低于表下界应取 B 下界: clamped=%v b=%v", clamped, b)
	}
}

// TestSpecificLoss 验证比损耗双线性插值及频率折算的方向性
func TestSpecificLoss(t *testing.T) {
	p50, clamped, err := SpecificLoss(types.GradeDW315, 1.5, 50)
	if err != nil {
		t.Fatalf("SpecificLoss 出错: %v", err)
	}
	if clamped {
		t.Fatal("50Hz 表内查询不应越界")
	}
	// DW315-50 在 B=1.5 处 50Hz 比损耗为 35.7
	if math.Abs(p50-35.7) > 1e-9 {
		t.Errorf("50Hz 比损耗不正确: %v", p50)
	}
	p60, _, err := SpecificLoss(types.GradeDW315, 1.5, 60)
	if err != nil {
		t.Fatalf("SpecificLoss 出错: %v", err)
	}
	if p60 <= p50 {
		t.Errorf("比损耗应随频率增大: p60=%v p50=%v", p60, p50)
	}
	// 频率轴中点为线性插值，应落在相邻频率行之间
	p55, _, err := SpecificLoss(types.GradeDW315, 1.5, 55)
	if err != nil {
		t.Fatalf("SpecificLoss 出错: %v", err)
	}
	if p55 <= p50 || p55 >= p60 {
		t.Errorf("55Hz 结果应在 50/60Hz 之间: %v", p55)
	}
	// 频率越界取边界行
	pLow, clamped, err := SpecificLoss(types.GradeDW315, 1.5, 10)
	if err != nil {
		t.Fatalf("SpecificLoss 出错: %v", err)
	}
	if !clamped || math.Abs(pLow-p50) > 1e-9 {
		t.Errorf("低于频率下界应取 50Hz 行: clamped=%v p=%v", clamped, pLow)
	}
}

// TestUnknownGrade 验证未知牌号显式报错而不是静默返回
func TestUnknownGrade(t *testing.T) {
	if _, _, err := LookupH(types.SteelGrade(99), 1.0); err == nil {
		t.Error("未知牌号应返回错误")
	}
	if _, _, err := LookupB(types.SteelGrade(0), 100); err == nil {
		t.Error("未知牌号应返回错误")
	}
	if _, _, err := SpecificLoss(types.SteelGrade(-1), 1.0, 50); err == nil {
		t.Error("未知牌号应返回错误")
	}
}
