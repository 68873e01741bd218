package calc

import (
	"fmt"
	"math"

	"aspmsm/steel"
)

// performanceStage 第 7 阶段：同步电抗与额定负载工作点
func performanceStage(r *Record) error {
	s := &r.Spec
	mc := &r.MagCircuit
	p := &r.Performance

	// 额定负载直轴去磁磁动势（折算到单位磁体磁动势）
	fa := 0.45 * float64(s.M) * r.Winding.N * r.Winding.Kdp * 0.5 * r.Basic.IN / float64(s.P)
	var fad float64
	if s.Lev == 1 {
		fad = fa / r.Magnet.FF
	} else {
		fad = 2 * fa / r.Magnet.FF
	}
	f1 := fad / s.Sigma0

	// 负载工作点与负载磁通
	p.BmN = mc.LambdaN * (1 - f1) / (mc.LambdaN + 1)
	fin := (p.BmN - (1-p.BmN)*mc.LambdaS) * r.Magnet.FAIM * 1e-6
	kfi := 8 / (math.Pi * math.Pi) / rfai * math.Sin(rfai*math.Pi/2)
	ed := 4.44 * s.F * r.Winding.N * r.Winding.Kdp * fin * kfi
	if math.IsNaN(ed) {
		return fmt.Errorf("负载反电动势非法: %v", ed)
	}

	// 直轴电枢反应电抗由空载与负载电动势之差确定
	p.Xad = math.Abs(mc.E0-ed) / (0.5 * r.Basic.IN)
	p.Xd = p.Xad + r.Impedance.X1
	p.Xaq = p.Xad * s.Kq
	p.Xq = p.Xaq + r.Impedance.X1

	kf := 4 / math.Pi * math.Sin(math.Pi*rfai/2)
	p.Kad = 1 / kf
	p.Kaq = s.Kq / kf
	return nil
}

// weightStage 第 8 阶段：有效材料质量
func weightStage(r *Record) error {
	s := &r.Spec
	w := &r.Weight
	lef := s.La + 2*s.G

	// 线圈长度取含端部的简化值，密度含 5% 工艺余量
	lc := 2 * (s.La + 2*(s.D+r.Impedance.Ls/2))
	w.MCu = 1.05 * 8.9 * float64(s.Q1) * float64(s.Ns) * lc / 2 * r.Winding.SCu * 1e-6
	w.MFe = 7.8 * lef * (s.D1 + 5) * (s.D1 + 5) * 1e-6
	w.MAl = 2.7 * (float64(s.Q2)*r.Geometry.AB*s.La +
		2*s.AR*math.Pi*r.Geometry.DR) * 1e-6
	w.Mm = r.Magnet.Mm
	return nil
}

// lossStage 第 9 阶段：各项损耗
// 铁耗按定子齿、轭磁密与电源频率查比损耗表，经验系数计入加工劣化
func lossStage(r *Record) error {
	s := &r.Spec
	l := &r.Loss

	l.PCu = float64(s.M) * r.Basic.IN * r.Basic.IN * r.Impedance.Rs

	pt1, ct, err := steel.SpecificLoss(s.Steel, r.MagCircuit.Bts, s.F)
	if err != nil {
		return err
	}
	pj1, cj, err := steel.SpecificLoss(s.Steel, r.MagCircuit.Bj1, s.F)
	if err != nil {
		return err
	}
	if ct || cj {
		r.advise("损耗计算", "铁耗查询点超出比损耗数据表范围，已取边界值")
	}
	l.PFe = 2.5*r.Geometry.Vt1*pt1/1e6 + 2*r.Geometry.Vj1*pj1/1e6

	l.Pfw = s.Pfwl * s.PN * 1000
	l.Ps = s.Psl * s.PN * 1000
	l.Sum = l.PCu + l.PFe + l.Pfw + l.Ps
	return nil
}
