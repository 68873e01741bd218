package calc

import (
	"math"

	"aspmsm/types"
)

// phaseVoltage 计算用相电压：星形连接取线电压除以 √3
func phaseVoltage(s *types.MotorSpec) float64 {
	if s.Star() {
		return s.UN / math.Sqrt(3)
	}
	return s.UN
}

// skinFactors 铸铝导条集肤效应系数
// 相对导条高度 ξ 由导条深度与转差频率下的透入深度之比给出，
// 返回电阻增大系数与槽漏抗减小系数
func skinFactors(barDepthMM, freq, temp float64) (kr, kx float64) {
	rou := resistivityAl(temp) * 1e-6 // Ω·m
	xi := barDepthMM * 1e-3 * math.Sqrt(math.Pi*freq*mu0/rou)
	sh, ch := math.Sinh(2*xi), math.Cosh(2*xi)
	sn, cs := math.Sin(2*xi), math.Cos(2*xi)
	kr = xi * (sh + sn) / (ch - cs)
	kx = 3 / (2 * xi) * (sh - sn) / (ch - cs)
	return kr, kx
}

// asyncTorque 转差率 s 处的异步电磁转矩 N·m
// 鼠笼等效电路，忽略励磁支路
func asyncTorque(r *Record, slip float64) float64 {
	spec := &r.Spec
	z := &r.Impedance
	r2s := z.R2 / slip
	un := phaseVoltage(spec)
	zz := (z.Rs+r2s)*(z.Rs+r2s) + (z.X1+z.X2)*(z.X1+z.X2)
	i2sq := un * un / zz
	return float64(spec.M) * float64(spec.P) * i2sq * r2s / (2 * math.Pi * spec.F)
}

// startingStage 第 10 阶段：启动特性
// 启动时转差频率等于电源频率，导条电阻与槽漏抗按集肤效应系数修正，
// 漏磁路饱和按 0.8 经验系数计入
func startingStage(r *Record) error {
	s := &r.Spec
	z := &r.Impedance
	st := &r.Starting

	st.Krs, st.Kxs = skinFactors(s.Hr12, s.F, s.T)
	st.R2st = z.RB*st.Krs + z.RR
	st.X1st = 0.8 * z.X1
	st.X2st = 0.8 * (z.Xs2*st.Kxs + z.Xd2 + z.XE2)

	un := phaseVoltage(s)
	zst := math.Hypot(z.Rs+st.R2st, st.X1st+st.X2st)
	st.Ist = un / zst
	st.IstRatio = st.Ist / r.Basic.IN
	tst := float64(s.M) * float64(s.P) * st.Ist * st.Ist * st.R2st / (2 * math.Pi * s.F)
	st.TstRatio = tst / r.Basic.TN

	// 牵入转差率：从小转差起扫描异步转矩曲线，
	// 找到第一个异步转矩不低于额定转矩的工作点
	st.PullInSlip = 1.0
	found := false
	for slip := 0.01; slip <= 1.0+1e-9; slip += 0.01 {
		if asyncTorque(r, slip) >= r.Basic.TN {
			st.PullInSlip = slip
			found = true
			break
		}
	}
	if !found {
		r.advise("启动特性", "异步转矩在全转差范围内低于额定转矩，无法牵入同步")
	}
	st.PullInSpeed = (1 - st.PullInSlip) * r.Basic.NN
	return nil
}

// actualStage 第 11 阶段：实际性能
// 效率由实算损耗而非种子值得出，功率因数按定子阻抗角简化计算
func actualStage(r *Record) error {
	s := &r.Spec
	a := &r.Actual

	pout := s.PN * 1000
	pin := pout + r.Loss.Sum
	a.Eta = pout / pin

	a.Cosfi = math.Cos(math.Atan(r.Impedance.X1 / r.Impedance.Rs))
	a.Phi = math.Acos(a.Cosfi) * 180 / math.Pi

	// 功率角：视在功率不足以传递额定功率时取极限值并提示
	sp := float64(s.M) * r.MagCircuit.E0 * r.Basic.IN / math.Sqrt(3)
	arg := pout / sp
	if arg > 1 {
		arg = 1
		r.advise("实际性能", "空载反电动势与额定电流之积不足以传递额定功率，功率角取 90°")
	}
	a.Theta = math.Asin(arg) * 180 / math.Pi

	sTotal := float64(s.Ns) * r.Winding.SCu
	slotArea := (s.B01+s.B1)*s.H12/2 + s.B01*s.H01
	a.Sf = sTotal / slotArea * 100

	a.A1 = float64(s.M) * r.Winding.N * r.Basic.IN / (math.Pi * s.Di1)
	a.J1 = r.Basic.IN / sTotal
	a.A1J1 = a.A1 * a.J1

	a.BmH = r.Performance.BmN * 0.382
	a.TN = pout / (2 * math.Pi * r.Basic.NN / 60)
	return nil
}
