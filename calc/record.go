// Package calc 异步启动永磁同步电动机电磁计算流水线
// 十一个阶段严格按序执行，数据只向后流动：
// 每个阶段写入记录中属于自己的分区，后续阶段只读取不回写
package calc

import "aspmsm/types"

// Basic 基本参数分区（第 1 阶段）
type Basic struct {
	OmegaS float64 // 同步角速度 rad/s
	NN     float64 // 额定转速 rpm
	IN     float64 // 额定电流 A
	TN     float64 // 额定转矩 N·m
	Tau    float64 // 极距 mm
}

// Winding 绕组参数分区（第 2 阶段）
type Winding struct {
	N    float64 // 每相串联匝数
	QPM  float64 // 每极每相槽数
	Kp1  float64 // 短距因数
	Kd1  float64 // 分布因数
	Ksk1 float64 // 斜槽因数
	Kdp  float64 // 绕组因数
	SCu  float64 // 每匝导线总截面积 mm²
}

// Geometry 几何参数分区（第 3 阶段）
type Geometry struct {
	T1    float64    // 定子齿距 mm
	T2    float64    // 转子齿距 mm
	D2    float64    // 转子外径 mm
	Hs1   float64    // 定子槽斜部高度 mm
	Bt1   float64    // 定子齿宽 mm
	Hj1   float64    // 定子轭高度 mm
	Ht1   float64    // 定子齿磁路长度 mm
	Lj1   float64    // 定子轭磁路长度 mm
	Hr    float64    // 转子槽总高度 mm
	AB    float64    // 转子槽面积 mm²
	Hj2   float64    // 转子轭高度 mm
	Bt2   float64    // 转子齿宽（槽底位置）mm
	Tooth [3]float64 // 转子齿宽三个径向位置 mm
	DR    float64    // 转子端环直径 mm
	Lj2   float64    // 转子轭磁路长度 mm
	Vt1   float64    // 定子齿体积 mm³
	Vj1   float64    // 定子轭体积 mm³
}

// Magnet 永磁体参数分区（第 4 阶段）
type Magnet struct {
	Br   float64 // 工作温度剩磁密度 T
	Hc   float64 // 工作温度矫顽力 A/m
	MUr  float64 // 相对回复磁导率
	Am   float64 // 永磁体截面积 mm²
	Vm   float64 // 永磁体体积 mm³
	Mm   float64 // 永磁体质量 kg
	FF   float64 // 永磁体磁动势 A
	FAIM float64 // 永磁体虚拟内禀磁通 Wb·mm
}

// MagCircuit 空载磁路分区（第 5 阶段，迭代求解结果）
type MagCircuit struct {
	Bm0        float64 // 永磁体空载工作点
	LambdaN    float64 // 外磁路总磁导标么值
	LambdaS    float64 // 漏磁导标么值
	FI0        float64 // 空载主磁通 Wb
	Bg         float64 // 气隙磁密 T
	Bg1        float64 // 气隙磁密基波幅值 T
	Bts        float64 // 定子齿磁密 T
	Bj1        float64 // 定子轭磁密 T
	Btr        float64 // 转子齿磁密 T
	Bj2        float64 // 转子轭磁密 T
	E0         float64 // 空载反电动势 V
	Kst        float64 // 齿饱和系数
	Kg         float64 // 气隙系数
	Iterations int     // 收敛时的迭代次数
	Residual   float64 // 收敛时的相对残差
}

// Impedance 阻抗参数分区（第 6 阶段）
type Impedance struct {
	Rs      float64 // 定子相电阻 Ω
	Xs1     float64 // 定子槽漏抗 Ω
	Xd1     float64 // 定子谐波漏抗 Ω
	XE1     float64 // 定子端部漏抗 Ω
	Xsk1    float64 // 定子斜槽漏抗 Ω
	X1      float64 // 定子总漏抗 Ω
	RB      float64 // 转子导条电阻 Ω
	RR      float64 // 转子端环电阻 Ω
	R2      float64 // 转子总电阻 Ω
	Xs2     float64 // 转子槽漏抗 Ω
	Xd2     float64 // 转子谐波漏抗 Ω
	XE2     float64 // 转子端部漏抗 Ω
	X2      float64 // 转子总漏抗 Ω
	LambdaR float64 // 转子槽比漏磁导
	Lc      float64 // 线圈总长度 mm
	Ls      float64 // 线圈端部平均长度 mm
	Fd      float64 // 端部轴向投影长度 mm
}

// Performance 稳态性能分区（第 7 阶段）
type Performance struct {
	Xad float64 // 直轴电枢反应电抗 Ω
	Xaq float64 // 交轴电枢反应电抗 Ω
	Xd  float64 // 直轴同步电抗 Ω
	Xq  float64 // 交轴同步电抗 Ω
	Kad float64 // 直轴磁动势折算系数
	Kaq float64 // 交轴磁动势折算系数
	BmN float64 // 额定负载工作点
}

// Weight 材料质量分区（第 8 阶段）
type Weight struct {
	MCu float64 // 铜线质量 kg
	MFe float64 // 硅钢片质量 kg
	MAl float64 // 铸铝质量 kg
	Mm  float64 // 永磁体质量 kg
}

// Loss 损耗分区（第 9 阶段）
type Loss struct {
	PCu float64 // 铜耗 W
	PFe float64 // 铁耗 W
	Pfw float64 // 机械损耗 W
	Ps  float64 // 杂散损耗 W
	Sum float64 // 总损耗 W
}

// Starting 启动特性分区（第 10 阶段）
type Starting struct {
	Krs         float64 // 导条电阻集肤效应系数
	Kxs         float64 // 导条漏抗集肤效应系数
	R2st        float64 // 启动转子电阻 Ω
	X1st        float64 // 启动定子漏抗 Ω
	X2st        float64 // 启动转子漏抗 Ω
	Ist         float64 // 启动电流 A
	IstRatio    float64 // 启动电流倍数
	TstRatio    float64 // 启动转矩倍数
	PullInSlip  float64 // 牵入转差率
	PullInSpeed float64 // 牵入转速 rpm
}

// Actual 实际性能分区（第 11 阶段，最终报告值）
type Actual struct {
	Eta   float64 // 实际效率（标么值）
	Cosfi float64 // 实际功率因数
	Theta float64 // 功率角 度
	Phi   float64 // 负载角 度
	Sf    float64 // 槽满率 %
	A1    float64 // 线负荷 A/mm
	J1    float64 // 电流密度 A/mm²
	A1J1  float64 // 线负荷电密积 A²/mm³
	BmH   float64 // 最大去磁工作点
	TN    float64 // 实际额定转矩 N·m
}

// Record 一次计算的全部参数记录
// 由单次流水线独占写入，计算成功后冻结，只供报告与图表消费
type Record struct {
	Spec types.MotorSpec // 输入参数（计算期间不再修改）

	Basic       Basic
	Winding     Winding
	Geometry    Geometry
	Magnet      Magnet
	MagCircuit  MagCircuit
	Impedance   Impedance
	Performance Performance
	Weight      Weight
	Loss        Loss
	Starting    Starting
	Actual      Actual

	Advisories []types.Advisory // 计算过程中累积的提示
	History    []float64        // 空载磁路迭代历史（可选诊断）

	done bool
}

// Completed 流水线是否已全部成功执行
func (r *Record) Completed() bool { return r.done }

// advise 追加一条提示信息
func (r *Record) advise(where, message string) {
	r.Advisories = append(r.Advisories, types.Advisory{Where: where, Message: message})
}
