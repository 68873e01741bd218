// Package report 电磁计算方案清单输出
package report

import (
	"fmt"
	"io"
	"strings"

	"aspmsm/calc"
)

// header 清单分节标题
func header(w io.Writer, title string) {
	fmt.Fprintf(w, "************************ %s ************************\n", title)
}

// Write 将完整计算结果写为方案清单
// 清单中全部为实算值，按参考设计程序的分节排版
func Write(w io.Writer, r *calc.Record) error {
	if !r.Completed() {
		return fmt.Errorf("计算未完成，无法输出方案清单")
	}
	s := &r.Spec

	fmt.Fprintf(w, "%.2fkW 内置式异步启动永磁同步电动机电磁计算方案清单\n", s.PN)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)

	header(w, "技术性能指标")
	fmt.Fprintf(w, "PN=%.2f kW  UN=%.0f V   m=%d          f=%.0f Hz\n", s.PN, s.UN, s.M, s.F)
	fmt.Fprintf(w, "p=%d          cosφN≥%.3f  ηN≥%.2f%%    t=%.0f℃\n", s.P, s.Cosfi, s.Eff*100, s.T)
	fmt.Fprintf(w, "nN=%.0f rpm  IN=%.2f A   TN=%.2f N·m\n\n", r.Basic.NN, r.Basic.IN, r.Basic.TN)

	header(w, "主要尺寸、绕组和定子")
	fmt.Fprintf(w, "D1=%.1fmm  Di1=%.1fmm  La=%.1fmm   δ=%.2fmm\n", s.D1, s.Di1, s.La, s.G)
	fmt.Fprintf(w, "Q1=%d       LE=%d         wgco=%d-%s     Ns=%d\n", s.Q1, s.LE, s.A, s.Wgco, s.Ns)
	fmt.Fprintf(w, "硅钢片：%s    槽型：%s\n\n", s.Steel, s.Slot)

	header(w, "定子绕组参数")
	fmt.Fprintf(w, "Nt1 = %d           d11 = %.2fmm      Nt2 = %d           d12 = %.2fmm\n",
		s.Nt1, s.D11, s.Nt2, s.D12)
	fmt.Fprintf(w, "y = %d             d = %.1fmm        Ls = %.1fmm\n", s.Y, s.D, r.Impedance.Ls)
	fmt.Fprintf(w, "Sf = %.1f%%        Kdp = %.3f        N = %.0f\n", r.Actual.Sf, r.Winding.Kdp, r.Winding.N)
	fmt.Fprintf(w, "b01 = %.1fmm       h01 = %.1fmm        α1 = %.0f°          b1 = %.1fmm\n",
		s.B01, s.H01, s.Alfa1, s.B1)
	fmt.Fprintf(w, "R1 = %.1fmm        h12 = %.1fmm      sks = %s\n\n", s.R1, s.H12, s.Sks)

	header(w, "转子")
	fmt.Fprintf(w, "b02 = %.1fmm       h02 = %.1fmm        α2 = %.0f°\n", s.B02, s.H02, s.Alfa2)
	fmt.Fprintf(w, "br1 = %.1fmm       br2 = %.1fmm       hr12 = %.1fmm     Di2 = %.1fmm\n",
		s.Br1, s.Br2, s.Hr12, s.Di2)
	fmt.Fprintf(w, "DR = %.1fmm      AB = %.0fmm²      AR = %.0fmm²     Q2 = %d\n\n",
		r.Geometry.DR, r.Geometry.AB, s.AR, s.Q2)

	header(w, "空载磁路计算结果")
	fmt.Fprintf(w, "Bδ1 = %.3fT       Bt1 = %.3fT      Bj1 = %.3fT      Bδ = %.3fT\n",
		r.MagCircuit.Bg1, r.MagCircuit.Bts, r.MagCircuit.Bj1, r.MagCircuit.Bg)
	fmt.Fprintf(w, "Bt2 = %.3fT      Bj2 = %.3fT      Kst = %.2f        Kg = %.3f\n",
		r.MagCircuit.Btr, r.MagCircuit.Bj2, r.MagCircuit.Kst, r.MagCircuit.Kg)
	fmt.Fprintf(w, "迭代 %d 次收敛，相对残差 %.2e\n\n", r.MagCircuit.Iterations, r.MagCircuit.Residual)

	header(w, "额定负载点损耗")
	fmt.Fprintf(w, "Σp = %.1f W\n", r.Loss.Sum)
	fmt.Fprintf(w, "pCu = %.1f W      pFe = %.1f W      ps = %.1f W       pfw = %.1f W\n\n",
		r.Loss.PCu, r.Loss.PFe, r.Loss.Ps, r.Loss.Pfw)

	header(w, "额定负载点热负荷")
	fmt.Fprintf(w, "J1 = %.1f A/mm²    A1 = %.1f A/mm     A1J1 = %.1f A²/mm³\n\n",
		r.Actual.J1, r.Actual.A1, r.Actual.A1J1)

	header(w, "材料质量")
	fmt.Fprintf(w, "mCu = %.2f kg      mFe = %.2f kg     mAl = %.2f kg      mm = %.2f kg\n\n",
		r.Weight.MCu, r.Weight.MFe, r.Weight.MAl, r.Weight.Mm)

	header(w, "计算性能（输出额定功率时）")
	fmt.Fprintf(w, "η = %.2f%%        cosφ = %.3f       I1 = %.2f A       Ist = %.2f倍\n",
		r.Actual.Eta*100, r.Actual.Cosfi, r.Basic.IN, r.Starting.IstRatio)
	fmt.Fprintf(w, "θ = %.1f°         φ = %.1f°         Tst = %.2f倍\n",
		r.Actual.Theta, r.Actual.Phi, r.Starting.TstRatio)
	fmt.Fprintf(w, "牵入转差率 spi = %.2f    牵入转速 npi = %.0f rpm\n\n",
		r.Starting.PullInSlip, r.Starting.PullInSpeed)

	header(w, "永磁磁极")
	magnet := "NdFeB"
	if s.Magnet == 2 {
		magnet = "Ferrite"
	}
	fmt.Fprintf(w, "Lev = %d             magnet = %s      E0 = %.1f V        δ12 = %.2f mm\n",
		s.Lev, magnet, r.MagCircuit.E0, s.G12)
	fmt.Fprintf(w, "Br = %.2f T          Hc = %.0f A/m       μr = %.2f          σ0 = %.2f\n",
		r.Magnet.Br, r.Magnet.Hc, r.Magnet.MUr, s.Sigma0)
	fmt.Fprintf(w, "hM = %.2f mm         bM = %.1f mm        LM = %.1f mm\n\n", s.HM, s.BM, s.LM)

	header(w, "永磁体工作点")
	fmt.Fprintf(w, "bm0 = %.3f          bmN = %.3f          bmh = %.3f\n\n",
		r.MagCircuit.Bm0, r.Performance.BmN, r.Actual.BmH)

	header(w, "电阻、电抗参数")
	fmt.Fprintf(w, "Kad = %.2f           Kaq = %.2f           Xad = %.2f Ω        Xaq = %.2f Ω\n",
		r.Performance.Kad, r.Performance.Kaq, r.Performance.Xad, r.Performance.Xaq)
	fmt.Fprintf(w, "Rs = %.3f Ω          Rr = %.3f Ω          X1 = %.3f Ω         X2 = %.3f Ω\n",
		r.Impedance.Rs, r.Impedance.R2, r.Impedance.X1, r.Impedance.X2)
	fmt.Fprintf(w, "Xd = %.3f Ω          Xq = %.3f Ω\n\n", r.Performance.Xd, r.Performance.Xq)

	header(w, "启动参数")
	fmt.Fprintf(w, "Krs = %.3f          Kxs = %.3f          R2st = %.4f Ω\n",
		r.Starting.Krs, r.Starting.Kxs, r.Starting.R2st)
	fmt.Fprintf(w, "X1st = %.4f Ω       X2st = %.4f Ω       Ist = %.1f A\n\n",
		r.Starting.X1st, r.Starting.X2st, r.Starting.Ist)

	if len(r.Advisories) > 0 {
		header(w, "提示")
		for _, a := range r.Advisories {
			fmt.Fprintf(w, "%s\n", a)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "*************************** 结束 ***************************")
	return nil
}
