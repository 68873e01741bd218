package types

import "fmt"

// InvalidInputError 输入参数非法，在流水线运行之前被拦截
type InvalidInputError struct {
	Field  string  // 非法字段
	Value  float64 // 实际取值
	Reason string  // 约束说明
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("输入参数非法: 字段 %s = %g，%s", e.Field, e.Value, e.Reason)
}

// GeometryError 槽型或几何约束不满足，几何阶段的硬性失败
type GeometryError struct {
	Quantity string  // 失败的几何量
	Value    float64 // 实际取值
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("几何约束不满足: %s = %g", e.Quantity, e.Value)
}

// ConvergenceError 空载磁路迭代达到次数上限仍未收敛
// 未收敛的结果不具备物理可信度，整个计算记录被丢弃
type ConvergenceError struct {
	Iterations int     // 已执行迭代次数
	Residual   float64 // 终止时的相对残差
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("空载磁路迭代未收敛: 迭代 %d 次后相对残差仍为 %.3e", e.Iterations, e.Residual)
}

// StageError 标记失败发生在流水线的哪个阶段
// 硬性失败在失败阶段立即中止流水线，后续阶段不会掩盖该错误
type StageError struct {
	Stage string // 阶段名称
	Index int    // 阶段序号（从 1 开始）
	Err   error  // 底层错误
}

func (e *StageError) Error() string {
	return fmt.Sprintf("第 %d 阶段（%s）计算失败: %v", e.Index, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
