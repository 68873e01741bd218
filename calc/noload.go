package calc

import (
	"fmt"
	"math"

	"aspmsm/steel"
	"aspmsm/types"
)

// rfai 气隙磁通波形系数（极弧系数）
const rfai = 0.64

// solveStatus 空载磁路求解器状态
type solveStatus int

const (
	solveRunning    solveStatus = iota // 迭代进行中
	solveConverged                     // 已收敛
	solveCapReached                    // 达到迭代上限仍未收敛
	solveDiverged                      // 迭代值脱离物理区间，发散
)

// noLoadSolver 空载磁路迭代求解器
// 唯一未知量为永磁体工作点 bm，每步由工作点推出全部磁密，
// 经 B-H 曲线求出各段磁位差，再由磁导比值更新工作点；
// 阻尼欠松弛保证在曲线饱和段附近仍然稳定
type noLoadSolver struct {
	rec *Record
	opt Options

	bm       float64     // 当前工作点
	iter     int         // 已执行迭代次数
	residual float64     // 当前相对残差
	status   solveStatus // 求解器状态

	// 每步评估出的中间量，收敛后写回记录
	fi0, bg, bts, bj1, btr, bj2 float64
	ft1, ft2                    float64
	lambdaN, lambdaM            float64

	advised map[string]bool // 已经提示过越界的磁路区段
}

// noLoadStage 第 5 阶段：空载磁路迭代计算
func noLoadStage(opt Options) func(*Record) error {
	return func(r *Record) error {
		s := &noLoadSolver{rec: r, opt: opt, advised: make(map[string]bool)}
		return s.solve()
	}
}

// seed 初始工作点：忽略铁磁阻，仅由磁体与气隙磁阻估算
func (s *noLoadSolver) seed() {
	spec := &s.rec.Spec
	s.bm = 0.95 * spec.Sigma0 * spec.HM / (spec.Sigma0*spec.HM + spec.G)
}

// lookupH 查磁场强度并在首次越界时记录提示
func (s *noLoadSolver) lookupH(region string, b float64) (float64, error) {
	h, clamped, err := steel.LookupH(s.rec.Spec.Steel, b)
	if err != nil {
		return 0, err
	}
	if clamped && !s.advised[region] {
		s.advised[region] = true
		lo, hi := steel.Range()
		if b > hi {
			s.rec.advise("空载磁路", fmt.Sprintf("%s磁密 %.3f T 超出数据表上界 %.2f T（接近深度饱和），已取边界值", region, b, hi))
		} else {
			s.rec.advise("空载磁路", fmt.Sprintf("%s磁密 %.3f T 低于数据表下界 %.2f T，已取边界值", region, b, lo))
		}
	}
	return h, nil
}

// evaluate 给定工作点计算一轮磁路，返回更新后的工作点
func (s *noLoadSolver) evaluate(bm float64) (float64, error) {
	spec := &s.rec.Spec
	g := &s.rec.Geometry
	m := &s.rec.Magnet
	lef := spec.La + 2*spec.G

	// 永磁体提供的主磁通与各区段磁密
	s.fi0 = bm * m.FAIM / spec.Sigma0 * 1e-6
	s.bg = s.fi0 / (rfai * s.rec.Basic.Tau * lef) * 1e6
	s.bts = s.bg * g.T1 * lef / (spec.La * stackFe * g.Bt1)
	s.bj1 = s.fi0 / (2 * spec.La * stackFe * g.Hj1) * 1e6
	s.btr = s.bg * g.T2 * lef / (spec.La * stackFe * g.Bt2)
	s.bj2 = s.fi0 / (2 * spec.La * stackFe * g.Hj2) * 1e6

	// 经 B-H 曲线求各铁磁区段磁位差
	hts, err := s.lookupH("定子齿", s.bts)
	if err != nil {
		return 0, err
	}
	hjs, err := s.lookupH("定子轭", s.bj1)
	if err != nil {
		return 0, err
	}
	htr, err := s.lookupH("转子齿", s.btr)
	if err != nil {
		return 0, err
	}
	hjr, err := s.lookupH("转子轭", s.bj2)
	if err != nil {
		return 0, err
	}
	s.ft1 = hts * g.Ht1 / 10
	fj1 := hjs * g.Lj1 / 10
	s.ft2 = htr * g.Hr / 10
	fj2 := hjr * g.Lj2 / 10

	// 气隙磁位差（含永磁体等效气隙）与全磁路磁位差
	fg := s.bg / mu0 * (spec.G12 + spec.G*s.rec.MagCircuit.Kg) * 1e-3
	sumF := 2 * (fg + s.ft1 + fj1 + s.ft2 + fj2)
	if sumF <= 0 || math.IsNaN(sumF) {
		return 0, fmt.Errorf("磁路磁位差非法: %v", sumF)
	}

	// 由磁导比值得到新的工作点
	numdam := s.fi0 / sumF
	if spec.Lev == 1 {
		s.lambdaM = numdam * 2 * spec.HM * 1e-3 / (m.MUr * mu0 * m.Am * 1e-6)
	} else {
		s.lambdaM = numdam * spec.HM * 1e-3 / (m.MUr * mu0 * m.Am * 1e-6)
	}
	s.lambdaN = spec.Sigma0 * s.lambdaM
	return s.lambdaN / (s.lambdaN + 1), nil
}

// solve 迭代至收敛、发散或达到次数上限
// 发散与上限均为硬性失败：未收敛的迭代值不具备物理可信度，绝不当作结果返回
func (s *noLoadSolver) solve() error {
	r := s.rec
	r.MagCircuit.Kg = gapFactor(r)
	s.seed()

	for s.status = solveRunning; s.status == solveRunning; {
		if s.iter >= s.opt.MaxIter {
			s.status = solveCapReached
			break
		}
		s.iter++
		next, err := s.evaluate(s.bm)
		if err != nil {
			// 迭代值已脱离物理区间，按发散处理
			s.status = solveDiverged
			break
		}
		if s.opt.History {
			r.History = append(r.History, next)
		}
		step := next - s.bm
		s.residual = math.Abs(step) / math.Abs(next)
		if s.residual < s.opt.Tolerance || math.Abs(step) < s.opt.StepFloor {
			s.bm = next
			s.status = solveConverged
			break
		}
		// 阻尼欠松弛更新；工作点越出 (0,1) 即已发散
		s.bm += s.opt.Damping * step
		if s.bm <= 0 || s.bm >= 1 || math.IsNaN(s.bm) {
			s.status = solveDiverged
			break
		}
	}
	if s.status != solveConverged {
		return &types.ConvergenceError{Iterations: s.iter, Residual: s.residual}
	}

	// 在收敛工作点上重算一遍磁路，保证记录中的磁密自洽
	if _, err := s.evaluate(s.bm); err != nil {
		return err
	}
	spec := &r.Spec
	mc := &r.MagCircuit
	mc.Bm0 = s.bm
	mc.LambdaN = s.lambdaN
	mc.LambdaS = (spec.Sigma0 - 1) * s.lambdaM
	mc.FI0 = s.bm * r.Magnet.FAIM / spec.Sigma0 * 1e-6
	mc.Bg = s.bg
	mc.Bts = s.bts
	mc.Bj1 = s.bj1
	mc.Btr = s.btr
	mc.Bj2 = s.bj2
	mc.Iterations = s.iter
	mc.Residual = s.residual

	// 气隙磁密基波与空载反电动势
	kf := 4 / math.Pi * math.Sin(math.Pi*rfai/2)
	mc.Bg1 = kf * s.bg
	kfi := 8 / (math.Pi * math.Pi) / rfai * math.Sin(rfai*math.Pi/2)
	mc.E0 = 4.44 * spec.F * r.Winding.N * r.Winding.Kdp * mc.FI0 * kfi

	// 齿饱和系数
	fgg := s.bg / mu0 * spec.G * mc.Kg * 1e-3
	mc.Kst = (fgg + s.ft1 + s.ft2) / fgg
	return nil
}
