package slot

import (
	"errors"
	"testing"

	"aspmsm/types"
)

func refDims() Dimensions {
	spec := types.DefaultSpec()
	return FromSpec(&spec)
}

// TestForShape 验证四种槽型均可取到策略且分派结果类型正确
func TestForShape(t *testing.T) {
	for _, s := range types.SlotShapes() {
		g, err := ForShape(s)
		if err != nil {
			t.Fatalf("槽型 %s 取策略失败: %v", s, err)
		}
		if g.Shape() != s {
			t.Errorf("槽型分派错误: 期望 %s，实际 %s", s, g.Shape())
		}
	}
	if _, err := ForShape(types.SlotShape(9)); err == nil {
		t.Error("未知槽型应返回错误")
	}
}

// TestAreaPositive 参考尺寸下四种槽型面积均为正
func TestAreaPositive(t *testing.T) {
	d := refDims()
	for _, s := range types.SlotShapes() {
		g, _ := ForShape(s)
		area, err := g.Area(d)
		if err != nil {
			t.Fatalf("%s 面积计算失败: %v", s, err)
		}
		if area <= 0 {
			t.Errorf("%s 面积应为正: %v", s, area)
		}
	}
}

// TestPearArea 梨形槽面积与两段梯形手算值一致
func TestPearArea(t *testing.T) {
	d := refDims()
	g, _ := ForShape(types.SlotPear)
	area, err := g.Area(d)
	if err != nil {
		t.Fatalf("面积计算失败: %v", err)
	}
	hr1 := d.shoulder()
	hr2 := d.Hr12 - hr1
	want := (d.B02+d.Br1)*hr1/2 + (d.Br1+d.Br2)*hr2/2
	if area != want {
		t.Errorf("梨形槽面积不正确: %v != %v", area, want)
	}
}

// TestInfeasibleDimensions 不可行尺寸返回 GeometryError 而不是负面积
func TestInfeasibleDimensions(t *testing.T) {
	d := refDims()
	d.Alfa2 = 89.0 // 槽肩高度超过槽身
	g, _ := ForShape(types.SlotPear)
	if _, err := g.Area(d); err == nil {
		t.Fatal("槽肩高于槽身应返回错误")
	} else {
		var ge *types.GeometryError
		if !errors.As(err, &ge) {
			t.Errorf("错误类型应为 GeometryError: %T", err)
		}
	}
	d = refDims()
	d.Br2 = 40.0 // 槽底圆弧超过槽身高度
	g, _ = ForShape(types.SlotSemiPear)
	if _, err := g.Area(d); err == nil {
		t.Error("槽底圆弧超高应返回错误")
	}
}

// TestPermeance 四种槽型漏磁导为正且槽族之间互不相同
func TestPermeance(t *testing.T) {
	d := refDims()
	got := make(map[types.SlotShape]float64)
	for _, s := range types.SlotShapes() {
		g, _ := ForShape(s)
		lambda, err := g.Permeance(d)
		if err != nil {
			t.Fatalf("%s 漏磁导计算失败: %v", s, err)
		}
		if lambda <= 0 {
			t.Errorf("%s 漏磁导应为正: %v", s, lambda)
		}
		got[s] = lambda
	}
	if got[types.SlotPear] == got[types.SlotRound] {
		t.Error("不同槽族的漏磁导公式不应给出相同结果")
	}
	// 圆形槽为常数项加槽口项
	want := 0.623 + d.H02/d.B02
	if got[types.SlotRound] != want {
		t.Errorf("圆形槽漏磁导不正确: %v != %v", got[types.SlotRound], want)
	}
}

// TestPermeanceEqualWidth 槽宽比为 1 时梨形槽走等宽退化公式且结果有限为正
func TestPermeanceEqualWidth(t *testing.T) {
	d := refDims()
	d.Br2 = d.Br1
	for _, s := range []types.SlotShape{types.SlotPear, types.SlotBevelRound} {
		g, _ := ForShape(s)
		lambda, err := g.Permeance(d)
		if err != nil {
			t.Fatalf("%s 等宽槽漏磁导计算失败: %v", s, err)
		}
		if lambda <= 0 {
			t.Errorf("%s 等宽槽漏磁导应为正: %v", s, lambda)
		}
	}
}

// TestToothWidths 参考尺寸下齿宽三件套均为正，且梨形槽槽底齿宽与手算一致
func TestToothWidths(t *testing.T) {
	d := refDims()
	spec := types.DefaultSpec()
	D2 := spec.Di1 - 2*spec.G
	for _, s := range types.SlotShapes() {
		g, _ := ForShape(s)
		w := g.ToothWidths(d, D2, spec.Q2)
		for i, v := range w {
			if v <= 0 {
				t.Errorf("%s 第 %d 位置齿宽应为正: %v", s, i, v)
			}
		}
	}
	g, _ := ForShape(types.SlotPear)
	w := g.ToothWidths(d, D2, spec.Q2)
	want := toothAt(D2, spec.Q2, d.H02+d.Hr12, d.Br2)
	if w[2] != want {
		t.Errorf("梨形槽槽底齿宽不正确: %v != %v", w[2], want)
	}
}
