package calc

import (
	"aspmsm/types"
)

// Options 空载磁路迭代求解选项
type Options struct {
	MaxIter   int     // 迭代次数上限，超过即失败
	Tolerance float64 // 相对残差收敛阈值
	StepFloor float64 // 绝对步长下限，低于即认为收敛
	Damping   float64 // 欠松弛阻尼系数
	History   bool    // 是否记录迭代历史
}

// DefaultOptions 默认求解选项
func DefaultOptions() Options {
	return Options{
		MaxIter:   100,
		Tolerance: 1e-4,
		StepFloor: 1e-6,
		Damping:   0.5,
	}
}

// withDefaults 用默认值补齐未设置的字段
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxIter <= 0 {
		o.MaxIter = d.MaxIter
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	if o.StepFloor <= 0 {
		o.StepFloor = d.StepFloor
	}
	if o.Damping <= 0 {
		o.Damping = d.Damping
	}
	return o
}

// stage 流水线中的一个计算阶段
type stage struct {
	name string
	run  func(*Record) error
}

// pipeline 按序组装十一个阶段
// 任何阶段返回错误即终止，错误带上阶段序号与名称
func pipeline(opt Options) []stage {
	return []stage{
		{"基本参数", basicStage},
		{"绕组参数", windingStage},
		{"几何参数", geometryStage},
		{"永磁体参数", magnetStage},
		{"空载磁路", noLoadStage(opt)},
		{"阻抗参数", impedanceStage},
		{"稳态性能", performanceStage},
		{"材料质量", weightStage},
		{"损耗", lossStage},
		{"启动特性", startingStage},
		{"实际性能", actualStage},
	}
}

// Run 按默认求解选项执行完整电磁计算
func Run(spec types.MotorSpec) (*Record, error) {
	return RunOptions(spec, DefaultOptions())
}

// RunOptions 执行完整电磁计算
// 输入校验不通过不进入任何阶段；失败的计算不返回记录
func RunOptions(spec types.MotorSpec, opt Options) (*Record, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	opt = opt.withDefaults()

	r := &Record{Spec: spec}
	for i, st := range pipeline(opt) {
		if err := st.run(r); err != nil {
			return nil, &types.StageError{Stage: st.name, Index: i + 1, Err: err}
		}
	}
	r.done = true
	return r, nil
}
