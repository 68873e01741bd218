package calc

import (
	"math"

	"aspmsm/slot"
)

// resistivityCu 铜电阻率温度修正 Ω·mm²/m
func resistivityCu(t float64) float64 { return 0.0175 * (1 + 0.004*(t-15)) }

// resistivityAl 铸铝电阻率温度修正 Ω·mm²/m
func resistivityAl(t float64) float64 { return 0.035 * (1 + 0.004*(t-15)) }

// leakageCoeff 漏抗系数，各漏抗分量的公共因子
func leakageCoeff(r *Record) float64 {
	s := &r.Spec
	lef := s.La + 2*s.G
	nk := r.Winding.N * r.Winding.Kdp
	return (4 * math.Pi) * (4 * math.Pi) * 1e-10 * s.F * lef * nk * nk / float64(s.P)
}

// impedanceStage 第 6 阶段：阻抗参数
// 定子电阻按工作温度电阻率，槽漏抗按绕组节距分段系数，
// 转子槽漏抗由所选槽型的经验漏磁导公式给出
func impedanceStage(r *Record) error {
	s := &r.Spec
	g := &r.Geometry
	w := &r.Winding
	z := &r.Impedance
	lef := s.La + 2*s.G

	// 线圈长度：单层绕组用经验系数，双层绕组按槽形张角推算
	var sss float64
	if s.LE >= 1 && s.LE <= 3 {
		switch {
		case s.P == 1:
			sss = 0.58
		case s.P == 2 || s.P == 3:
			sss = 0.6
		default:
			sss = 0.625
		}
	} else {
		span := (s.B1 + 2*s.R1) / (s.B1 + 2*s.R1 + 2*g.Bt1)
		sss = 1 / math.Sqrt(1-span*span) / 2
	}
	taoy := math.Pi / 2 / float64(s.P) * (s.Di1 + 2*(s.H01+g.Hs1) + s.H12 - g.Hs1 + s.R1)
	if s.LE == 1 || s.LE == 2 {
		taoy *= 0.85
	}
	leip := sss * taoy
	z.Lc = 2 * (s.La + 2*(s.D+leip))
	z.Fd = leip * (s.B1 + 2*s.R1) / (s.B1 + 2*s.R1 + 2*g.Bt1)
	z.Ls = 2 * (s.D + leip)

	// 定子相电阻
	z.Rs = resistivityCu(s.T) * z.Lc * w.N / (float64(s.A) * w.SCu * 1000)

	cx := leakageCoeff(r)

	// 定子槽漏抗：上下层分别乘节距漏抗系数
	au1 := s.H01/s.B01 + 2*g.Hs1/(s.B01+s.B1)
	al1 := 2 * s.H12 / (s.B01 + s.B1)
	beta := 1.0
	if s.LE < 1 || s.LE > 3 {
		beta = float64(s.Y) / (float64(s.M) * w.QPM)
	}
	if beta > 1 {
		beta = 2 - beta
	}
	var ku1, kl1 float64
	switch {
	case beta >= 2.0/3.0:
		ku1 = (3*beta + 1) / 4
		kl1 = (9*beta + 7) / 16
	case beta > 1.0/3.0:
		ku1 = (6*beta - 1) / 4
		kl1 = (18*beta + 1) / 16
	default:
		ku1 = 0.75 * beta
		kl1 = (9*beta + 4) / 16
	}
	as1 := ku1*au1 + kl1*al1
	z.Xs1 = s.La * float64(s.M) * 2 * float64(s.P) * as1 /
		(lef * w.Kdp * w.Kdp * float64(s.Q1)) * cx

	// 定子谐波漏抗
	sumr := math.Pi * math.Pi * math.Pow(2*float64(s.P)/float64(s.Q1), 2) / 12
	z.Xd1 = float64(s.M) * r.Basic.Tau * sumr /
		(math.Pi * math.Pi * r.MagCircuit.Kg * s.G * r.MagCircuit.Kst) * cx

	// 定子端部漏抗，按绕组型式取经验公式
	switch s.LE {
	case 0:
		z.XE1 = 1.2 * (s.D + 0.5*z.Fd) / lef * cx
	case 1:
		z.XE1 = 0.67 * (z.Ls - 0.64*taoy) / (lef * w.Kdp * w.Kdp) * cx
	case 2:
		z.XE1 = 0.47 * (z.Ls - 0.64*taoy) / (lef * w.Kdp * w.Kdp) * cx
	default:
		z.XE1 = 0.2 * z.Ls / (lef * w.Kdp * w.Kdp) * cx
	}

	// 斜槽漏抗
	if s.Skewed() {
		tsk := float64(s.Q1) * g.T1 / float64(s.Q1+s.P)
		z.Xsk1 = 0.5 * (tsk / g.T1) * (tsk / g.T1) * z.Xd1
	}
	z.X1 = z.Xs1 + z.Xd1 + z.XE1 + z.Xsk1

	// 转子电阻：导条加端环，折算到定子侧
	kc := float64(s.M) * math.Pow(2*w.N*w.Kdp, 2) * 1e-4
	roua := resistivityAl(s.T)
	z.RB = kc * (1.04 * s.La * roua * 10) / (g.AB * float64(s.Q2))
	z.RR = kc * (g.DR * roua * 10) / (2 * math.Pi * float64(s.P) * float64(s.P) * s.AR)
	z.R2 = z.RB + z.RR

	// 转子槽漏抗：经验漏磁导按槽型分派
	geom, err := slot.ForShape(s.Slot)
	if err != nil {
		return err
	}
	z.LambdaR, err = geom.Permeance(slot.FromSpec(s))
	if err != nil {
		return err
	}
	z.Xs2 = s.La * float64(s.M) * 2 * float64(s.P) * z.LambdaR * cx / (lef * float64(s.Q2))

	sumr2 := math.Pi * math.Pi * math.Pow(2*float64(s.P)/float64(s.Q2), 2) / 12
	z.Xd2 = float64(s.M) * r.Basic.Tau * sumr2 /
		(math.Pi * math.Pi * s.G * r.MagCircuit.Kg * r.MagCircuit.Kst) * cx

	z.XE2 = 0.757 / lef * (g.DR / (2 * float64(s.P))) * cx
	z.X2 = z.Xs2 + z.Xd2 + z.XE2
	return nil
}
