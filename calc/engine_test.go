package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"aspmsm/types"
)

// refSpec 参考设计：15kW 电机配 DR510-50 硅钢片与梨形槽
func refSpec() types.MotorSpec {
	s := types.DefaultSpec()
	s.Steel = types.GradeDR510
	s.Slot = types.SlotPear
	return s
}

// TestRunReference 参考设计全流水线执行成功且关键结果物理合理
func TestRunReference(t *testing.T) {
	r, err := Run(refSpec())
	if err != nil {
		t.Fatalf("参考设计计算失败: %v", err)
	}
	if !r.Completed() {
		t.Fatal("计算成功后 Completed 应为真")
	}
	if r.Basic.TN <= 0 || math.IsInf(r.Basic.TN, 0) || math.IsNaN(r.Basic.TN) {
		t.Errorf("额定转矩应为有限正数: %v", r.Basic.TN)
	}
	if r.Actual.Eta <= 0 || r.Actual.Eta >= 1 {
		t.Errorf("实际效率应在 (0,1) 区间: %v", r.Actual.Eta)
	}
	if r.Actual.Cosfi <= 0 || r.Actual.Cosfi > 1 {
		t.Errorf("实际功率因数应在 (0,1] 区间: %v", r.Actual.Cosfi)
	}
	if r.MagCircuit.E0 <= 0 {
		t.Errorf("空载反电动势应为正: %v", r.MagCircuit.E0)
	}
	if r.MagCircuit.Bg <= 0 || r.MagCircuit.Bg > 2.5 {
		t.Errorf("气隙磁密不合理: %v", r.MagCircuit.Bg)
	}
}

// TestRunInvalidInput 非法输入在任何阶段执行之前被拒绝
func TestRunInvalidInput(t *testing.T) {
	s := refSpec()
	s.PN = -15
	r, err := Run(s)
	if err == nil {
		t.Fatal("负额定功率应返回错误")
	}
	if r != nil {
		t.Error("失败的计算不应返回记录")
	}
	var ie *types.InvalidInputError
	if !errors.As(err, &ie) {
		t.Fatalf("错误类型应为 InvalidInputError: %T", err)
	}
	var se *types.StageError
	if errors.As(err, &se) {
		t.Error("输入校验错误不应带阶段信息")
	}
}

// TestRunMonotonic 额定功率增大时额定电流与额定转矩随之增大
func TestRunMonotonic(t *testing.T) {
	small, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	s := refSpec()
	s.PN = 18.5
	big, err := Run(s)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if big.Basic.IN <= small.Basic.IN {
		t.Errorf("功率增大后额定电流应增大: %v <= %v", big.Basic.IN, small.Basic.IN)
	}
	if big.Basic.TN <= small.Basic.TN {
		t.Errorf("功率增大后额定转矩应增大: %v <= %v", big.Basic.TN, small.Basic.TN)
	}
}

// TestRunDeterministic 相同输入两次计算结果完全一致
func TestRunDeterministic(t *testing.T) {
	a, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	b, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("相同输入的两次计算结果不一致")
	}
}

// TestActualTorqueMatchesRated 实际转矩与第 1 阶段额定转矩严格一致
func TestActualTorqueMatchesRated(t *testing.T) {
	r, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	if r.Actual.TN != r.Basic.TN {
		t.Errorf("实际转矩应与额定转矩完全一致: %v != %v", r.Actual.TN, r.Basic.TN)
	}
}

// TestSynchronousSpeed 一对极 50Hz 同步转速为 3000 rpm
func TestSynchronousSpeed(t *testing.T) {
	s := refSpec()
	s.P = 1
	r := &Record{Spec: s}
	if err := basicStage(r); err != nil {
		t.Fatalf("基本参数计算失败: %v", err)
	}
	if r.Basic.NN != 3000 {
		t.Errorf("同步转速应为 3000 rpm: %v", r.Basic.NN)
	}
}

// TestSolverDiverging 过松弛迭代发散时返回 ConvergenceError 而不是静默返回
func TestSolverDiverging(t *testing.T) {
	opt := DefaultOptions()
	opt.Damping = 2.0
	r, err := RunOptions(refSpec(), opt)
	if err == nil {
		t.Fatal("过松弛迭代应返回收敛错误")
	}
	if r != nil {
		t.Error("未收敛的计算不应返回记录")
	}
	var ce *types.ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("错误类型应为 ConvergenceError: %T", err)
	}
	var se *types.StageError
	if !errors.As(err, &se) || se.Stage != "空载磁路" {
		t.Errorf("收敛错误应出自空载磁路阶段: %v", err)
	}
	// 工作点越出物理区间时提前终止，迭代次数可小于上限
	if ce.Iterations < 1 || ce.Iterations > opt.MaxIter {
		t.Errorf("迭代次数应在 [1, %d] 区间: %d", opt.MaxIter, ce.Iterations)
	}
}

// TestSolverIterationCap 迭代上限不足时硬性失败
func TestSolverIterationCap(t *testing.T) {
	opt := Options{MaxIter: 1, Tolerance: 1e-12, StepFloor: 1e-12, Damping: 0.5}
	_, err := RunOptions(refSpec(), opt)
	var ce *types.ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("迭代上限不足应返回 ConvergenceError: %v", err)
	}
	var se *types.StageError
	if !errors.As(err, &se) {
		t.Fatal("阶段错误应带阶段信息")
	}
	if se.Stage != "空载磁路" {
		t.Errorf("收敛错误应出自空载磁路阶段: %s", se.Stage)
	}
}

// TestSolverObservable 收敛过程的迭代次数、残差与历史可观测
func TestSolverObservable(t *testing.T) {
	opt := DefaultOptions()
	opt.History = true
	r, err := RunOptions(refSpec(), opt)
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	mc := &r.MagCircuit
	if mc.Iterations < 1 || mc.Iterations > opt.MaxIter {
		t.Errorf("迭代次数不合理: %d", mc.Iterations)
	}
	if mc.Residual >= opt.Tolerance {
		t.Errorf("收敛残差应小于阈值 %v: %v", opt.Tolerance, mc.Residual)
	}
	if len(r.History) != mc.Iterations {
		t.Errorf("迭代历史长度应等于迭代次数: %d != %d", len(r.History), mc.Iterations)
	}
	if mc.Bm0 <= 0 || mc.Bm0 >= 1 {
		t.Errorf("空载工作点应在 (0,1) 区间: %v", mc.Bm0)
	}
}

// TestRunAllCombinations 全部槽型与硅钢片组合要么成功要么返回类型化错误
func TestRunAllCombinations(t *testing.T) {
	for _, sl := range types.SlotShapes() {
		for _, st := range types.SteelGrades() {
			s := types.DefaultSpec()
			s.Slot = sl
			s.Steel = st
			r, err := Run(s)
			if err != nil {
				var se *types.StageError
				var ie *types.InvalidInputError
				if !errors.As(err, &se) && !errors.As(err, &ie) {
					t.Errorf("%s/%s 返回未类型化错误: %v", sl, st, err)
				}
				continue
			}
			if !r.Completed() {
				t.Errorf("%s/%s 计算未完成但未报错", sl, st)
			}
			if r.MagCircuit.E0 <= 0 {
				t.Errorf("%s/%s 空载反电动势应为正: %v", sl, st, r.MagCircuit.E0)
			}
		}
	}
}

// TestTorqueCurve 转矩曲线覆盖全转差范围且数值有限
func TestTorqueCurve(t *testing.T) {
	r, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	pts := r.TorqueCurve()
	if len(pts) != torquePoints {
		t.Fatalf("采样点数不正确: %d", len(pts))
	}
	if pts[0].X != 0.01 || math.Abs(pts[len(pts)-1].X-1.0) > 1e-9 {
		t.Errorf("转差率范围应为 [0.01, 1.0]: [%v, %v]", pts[0].X, pts[len(pts)-1].X)
	}
	for _, p := range pts {
		if p.Y <= 0 || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("转差率 %v 处转矩非法: %v", p.X, p.Y)
		}
	}
}

// TestFlat 平面键值表覆盖全部报告量且无非法数值
func TestFlat(t *testing.T) {
	r, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	flat := r.Flat()
	for _, key := range []string{"IN", "TN", "E0", "Rs", "X1", "Xd", "Xq", "eta", "cosfi", "Kist", "Ktst", "spi"} {
		v, ok := flat[key]
		if !ok {
			t.Errorf("缺少键 %s", key)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("键 %s 的值非法: %v", key, v)
		}
	}
}

// TestStartingSkinEffect 集肤效应系数方向正确：电阻增大，漏抗减小
func TestStartingSkinEffect(t *testing.T) {
	r, err := Run(refSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	st := &r.Starting
	if st.Krs <= 1 {
		t.Errorf("启动电阻集肤系数应大于 1: %v", st.Krs)
	}
	if st.Kxs >= 1 || st.Kxs <= 0 {
		t.Errorf("启动漏抗集肤系数应在 (0,1) 区间: %v", st.Kxs)
	}
	if st.R2st <= r.Impedance.R2 {
		t.Errorf("启动转子电阻应大于运行值: %v <= %v", st.R2st, r.Impedance.R2)
	}
	if st.Ist <= r.Basic.IN {
		t.Errorf("启动电流应大于额定电流: %v <= %v", st.Ist, r.Basic.IN)
	}
	if st.PullInSlip <= 0 || st.PullInSlip > 1 {
		t.Errorf("牵入转差率应在 (0,1] 区间: %v", st.PullInSlip)
	}
}
