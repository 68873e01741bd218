package calc

import (
	"math"

	"aspmsm/slot"
	"aspmsm/types"
)

// mu0 真空磁导率 H/m
const mu0 = 4.0 * math.Pi * 1e-7

// stackFe 铁心叠压系数
const stackFe = 0.93

// basicStage 第 1 阶段：基本参数
func basicStage(r *Record) error {
	s := &r.Spec
	b := &r.Basic

	b.OmegaS = 2 * math.Pi * s.F / float64(s.P)
	b.NN = 60 * s.F / float64(s.P)

	// 星形连接按相电压计算
	b.IN = s.PN * 1000 / (float64(s.M) * phaseVoltage(s) * s.Eff * s.Cosfi)
	b.TN = s.PN * 1000 / (2 * math.Pi * b.NN / 60)
	b.Tau = math.Pi * s.Di1 / (2 * float64(s.P))
	return nil
}

// windingStage 第 2 阶段：绕组参数
func windingStage(r *Record) error {
	s := &r.Spec
	w := &r.Winding

	w.N = float64(s.Q1) * float64(s.Ns) / (2 * float64(s.M) * float64(s.A))
	w.QPM = float64(s.Q1) / (2 * float64(s.M) * float64(s.P))
	if w.QPM <= 0 {
		return &types.GeometryError{Quantity: "每极每相槽数", Value: w.QPM}
	}

	// 单层绕组按整距处理，双层绕组按节距比计算
	beta := 1.0
	if s.LE < 1 || s.LE > 3 {
		beta = float64(s.Y) / (float64(s.M) * w.QPM)
	}
	w.Kp1 = math.Sin(beta * math.Pi / 2)
	w.Kd1 = math.Sin(math.Pi/(2*float64(s.M))) /
		(w.QPM * math.Sin(math.Pi/(2*float64(s.M)*w.QPM)))

	w.Ksk1 = 1.0
	if s.Skewed() {
		t1 := math.Pi * s.Di1 / float64(s.Q1)
		tsk := float64(s.Q1) * t1 / float64(s.Q1+s.P)
		alfas := tsk / r.Basic.Tau * math.Pi
		w.Ksk1 = 2 * math.Sin(alfas/2) / alfas
	}
	w.Kdp = w.Kp1 * w.Kd1 * w.Ksk1

	w.SCu = float64(s.Nt1)*math.Pi*s.D11*s.D11/4 + float64(s.Nt2)*math.Pi*s.D12*s.D12/4
	return nil
}

// geometryStage 第 3 阶段：几何参数
// 转子槽面积与齿宽由所选槽型策略给出，尺寸不可行即硬性失败
func geometryStage(r *Record) error {
	s := &r.Spec
	g := &r.Geometry

	g.T1 = math.Pi * s.Di1 / float64(s.Q1)
	g.D2 = s.Di1 - 2*s.G
	if g.D2 <= s.Di2 {
		return &types.GeometryError{Quantity: "转子外径", Value: g.D2}
	}
	g.T2 = math.Pi * g.D2 / float64(s.Q2)

	// 定子槽形
	g.Hs1 = (s.B1 - s.B01) / 2 * math.Tan(s.Alfa1*math.Pi/180)
	g.Bt1 = (s.Di1+2*(s.H01+s.H12))*math.Pi/float64(s.Q1) - 2*s.R1
	if g.Bt1 <= 0 {
		return &types.GeometryError{Quantity: "定子齿宽", Value: g.Bt1}
	}
	g.Hj1 = (s.D1-s.Di1)/2 - (s.H01 + s.H12 + 2*s.R1/3)
	if g.Hj1 <= 0 {
		return &types.GeometryError{Quantity: "定子轭高度", Value: g.Hj1}
	}
	g.Ht1 = s.H12 + s.R1/3
	g.Lj1 = math.Pi * (s.D1 - g.Hj1) / (4 * float64(s.P))

	// 转子槽形由槽型策略给出
	geom, err := slot.ForShape(s.Slot)
	if err != nil {
		return err
	}
	dims := slot.FromSpec(s)
	g.Hr = s.H02 + s.Hr12
	g.AB, err = geom.Area(dims)
	if err != nil {
		return err
	}
	g.Tooth = geom.ToothWidths(dims, g.D2, s.Q2)
	g.Bt2 = g.Tooth[2]
	if g.Bt2 <= 0 {
		return &types.GeometryError{Quantity: "转子齿宽", Value: g.Bt2}
	}

	// 转子轭
	if s.Lev == 1 {
		g.Hj2 = (g.D2-s.Di2)/2 - g.Hr - s.HM
	} else {
		g.Hj2 = s.BM
	}
	if g.Hj2 <= 0 {
		return &types.GeometryError{Quantity: "转子轭高度", Value: g.Hj2}
	}
	g.DR = g.D2 - g.Hr - 2
	g.Lj2 = math.Pi * (s.Di2 + g.Hj2) / (4 * float64(s.P))

	// 定子齿和轭体积
	g.Vt1 = float64(s.Q1) * s.La * stackFe * g.Ht1 * g.Bt1
	g.Vj1 = math.Pi * (s.D1 - g.Hj1) * s.La * stackFe * g.Hj1
	return nil
}

// magnetStage 第 4 阶段：永磁体参数
func magnetStage(r *Record) error {
	s := &r.Spec
	m := &r.Magnet

	// 磁性能温度修正：钕铁硼与铁氧体的温度系数不同
	var temB, temH float64
	if s.Magnet == 1 {
		temB = 1 - (s.T-20)*0.12e-2
		temH = temB
	} else {
		temB = 1 - (s.T-20)*0.19e-2
		temH = 1 + (s.T-20)*0.4e-2
	}
	m.Br = temB * s.Br0
	m.Hc = temH * s.Hc0 * 1000
	if m.Br <= 0 || m.Hc <= 0 {
		return &types.GeometryError{Quantity: "工作温度下的磁性能", Value: m.Br}
	}
	m.MUr = s.Br0 / (mu0 * s.Hc0 * 1000)

	if s.Lev == 1 {
		m.Am = s.BM * s.LM
	} else {
		m.Am = 2 * s.BM * s.LM
	}
	m.Vm = 2 * float64(s.P) * s.LM * s.BM * s.HM
	m.Mm = s.ROUm * m.Vm / 1e9
	m.FF = s.HM * m.Hc / 1000
	m.FAIM = m.Am * m.Br
	return nil
}

// gapFactor 气隙系数（卡氏系数），定转子两侧开槽的乘积
func gapFactor(r *Record) float64 {
	s := &r.Spec
	ttt := r.Geometry.T1 * (4.4*s.G + 0.75*s.B01)
	kg1 := ttt / (ttt - s.B01*s.B01)
	fff := r.Geometry.T2 * (4.4*s.G + 0.75*s.B02)
	kg2 := fff / (fff - s.B02*s.B02)
	return kg1 * kg2
}
