package calc

import "fmt"

// Point 曲线上的一个采样点
type Point struct {
	X float64
	Y float64
}

// NamedValue 带名称的标量，用于柱状与饼图类数据
type NamedValue struct {
	Name  string
	Value float64
}

// torquePoints 异步转矩曲线采样点数
const torquePoints = 100

// TorqueCurve 异步转矩-转差率曲线
// 转差率从 0.01 均匀采样到 1.0，转矩以额定转矩为基值的标么值表示
func (r *Record) TorqueCurve() []Point {
	pts := make([]Point, 0, torquePoints)
	step := (1.0 - 0.01) / float64(torquePoints-1)
	for i := 0; i < torquePoints; i++ {
		slip := 0.01 + float64(i)*step
		pts = append(pts, Point{X: slip, Y: asyncTorque(r, slip) / r.Basic.TN})
	}
	return pts
}

// FluxProfile 空载磁路各区段磁密
func (r *Record) FluxProfile() []NamedValue {
	mc := &r.MagCircuit
	return []NamedValue{
		{"气隙", mc.Bg},
		{"定子齿", mc.Bts},
		{"定子轭", mc.Bj1},
		{"转子齿", mc.Btr},
		{"转子轭", mc.Bj2},
	}
}

// LossBreakdown 各项损耗构成
func (r *Record) LossBreakdown() []NamedValue {
	l := &r.Loss
	return []NamedValue{
		{"铜耗", l.PCu},
		{"铁耗", l.PFe},
		{"机械损耗", l.Pfw},
		{"杂散损耗", l.Ps},
	}
}

// ImpedanceBreakdown 定转子电阻与漏抗分量
func (r *Record) ImpedanceBreakdown() []NamedValue {
	z := &r.Impedance
	return []NamedValue{
		{"Rs", z.Rs},
		{"X1", z.X1},
		{"R2", z.R2},
		{"X2", z.X2},
		{"Xd", r.Performance.Xd},
		{"Xq", r.Performance.Xq},
	}
}

// Flat 全部计算结果的平面键值表
// 键名与设计报告一致，供外部程序按名取值
func (r *Record) Flat() map[string]float64 {
	m := map[string]float64{
		"nN":    r.Basic.NN,
		"IN":    r.Basic.IN,
		"TN":    r.Basic.TN,
		"TAO":   r.Basic.Tau,
		"OMGs":  r.Basic.OmegaS,
		"N":     r.Winding.N,
		"Kp1":   r.Winding.Kp1,
		"Kd1":   r.Winding.Kd1,
		"Ksk1":  r.Winding.Ksk1,
		"Kdp":   r.Winding.Kdp,
		"t1":    r.Geometry.T1,
		"t2":    r.Geometry.T2,
		"D2":    r.Geometry.D2,
		"bt1":   r.Geometry.Bt1,
		"bt2":   r.Geometry.Bt2,
		"hj1":   r.Geometry.Hj1,
		"hj2":   r.Geometry.Hj2,
		"AB":    r.Geometry.AB,
		"DR":    r.Geometry.DR,
		"Br":    r.Magnet.Br,
		"Hc":    r.Magnet.Hc,
		"MUr":   r.Magnet.MUr,
		"Am":    r.Magnet.Am,
		"FF":    r.Magnet.FF,
		"FAIM":  r.Magnet.FAIM,
		"Kg":    r.MagCircuit.Kg,
		"Bg":    r.MagCircuit.Bg,
		"Bg1":   r.MagCircuit.Bg1,
		"Bts":   r.MagCircuit.Bts,
		"Bj1":   r.MagCircuit.Bj1,
		"Btr":   r.MagCircuit.Btr,
		"Bj2":   r.MagCircuit.Bj2,
		"E0":    r.MagCircuit.E0,
		"bm0":   r.MagCircuit.Bm0,
		"Kst":   r.MagCircuit.Kst,
		"Rs":    r.Impedance.Rs,
		"R2":    r.Impedance.R2,
		"X1":    r.Impedance.X1,
		"X2":    r.Impedance.X2,
		"Xad":   r.Performance.Xad,
		"Xaq":   r.Performance.Xaq,
		"Xd":    r.Performance.Xd,
		"Xq":    r.Performance.Xq,
		"Kad":   r.Performance.Kad,
		"Kaq":   r.Performance.Kaq,
		"bmN":   r.Performance.BmN,
		"mCu":   r.Weight.MCu,
		"mFe":   r.Weight.MFe,
		"mAl":   r.Weight.MAl,
		"mm":    r.Weight.Mm,
		"pCu":   r.Loss.PCu,
		"pFe":   r.Loss.PFe,
		"pfw":   r.Loss.Pfw,
		"ps":    r.Loss.Ps,
		"pSum":  r.Loss.Sum,
		"Krs":   r.Starting.Krs,
		"Kxs":   r.Starting.Kxs,
		"R2st":  r.Starting.R2st,
		"X1st":  r.Starting.X1st,
		"X2st":  r.Starting.X2st,
		"Ist":   r.Starting.Ist,
		"Kist":  r.Starting.IstRatio,
		"Ktst":  r.Starting.TstRatio,
		"spi":   r.Starting.PullInSlip,
		"npi":   r.Starting.PullInSpeed,
		"eta":   r.Actual.Eta,
		"cosfi": r.Actual.Cosfi,
		"theta": r.Actual.Theta,
		"phi":   r.Actual.Phi,
		"Sf":    r.Actual.Sf,
		"A1":    r.Actual.A1,
		"J1":    r.Actual.J1,
		"A1J1":  r.Actual.A1J1,
		"bmh":   r.Actual.BmH,
	}
	for i, b := range r.Geometry.Tooth {
		m[fmt.Sprintf("btr%d", i+1)] = b
	}
	return m
}
