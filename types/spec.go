package types

// MotorSpec 电机设计输入参数
// 字段集合与参考设计程序一致，计算开始后不再修改
type MotorSpec struct {
	// 额定参数
	PN    float64 `yaml:"PN"`    // 额定功率 kW
	UN    float64 `yaml:"UN"`    // 额定电压 V
	M     int     `yaml:"m"`     // 相数
	F     float64 `yaml:"f"`     // 频率 Hz
	P     int     `yaml:"p"`     // 极对数
	Cosfi float64 `yaml:"cosfi"` // 额定功率因数（初算种子值）
	Eff   float64 `yaml:"eff"`   // 额定效率（初算种子值）

	// 定转子主要尺寸
	D1  float64 `yaml:"D1"`  // 定子外径 mm
	Di1 float64 `yaml:"Di1"` // 定子内径 mm
	La  float64 `yaml:"La"`  // 铁心长度 mm
	G   float64 `yaml:"g"`   // 气隙长度 mm
	G12 float64 `yaml:"g12"` // 永磁体等效气隙 mm
	Q1  int     `yaml:"Q1"`  // 定子槽数
	Q2  int     `yaml:"Q2"`  // 转子槽数
	Di2 float64 `yaml:"Di2"` // 转子内径 mm

	// 定子槽尺寸
	B01   float64 `yaml:"b01"`   // 定子槽口宽度 mm
	H01   float64 `yaml:"h01"`   // 定子槽口高度 mm
	B1    float64 `yaml:"b1"`    // 定子槽宽度 mm
	Alfa1 float64 `yaml:"alfa1"` // 定子槽斜角 度
	R1    float64 `yaml:"R1"`    // 定子槽圆角半径 mm
	H12   float64 `yaml:"h12"`   // 定子槽高度 mm
	Sks   string  `yaml:"sks"`   // 是否斜槽 Y/N

	// 转子槽尺寸
	B02   float64 `yaml:"b02"`   // 转子槽口宽度 mm
	H02   float64 `yaml:"h02"`   // 转子槽口高度 mm
	Br1   float64 `yaml:"br1"`   // 转子槽上部宽度 mm
	Br2   float64 `yaml:"br2"`   // 转子槽下部宽度 mm
	Hr12  float64 `yaml:"hr12"`  // 转子槽身高度 mm
	Alfa2 float64 `yaml:"alfa2"` // 转子槽斜角 度
	AR    float64 `yaml:"AR"`    // 转子端环截面积 mm²

	// 材料与槽型选择
	Slot  SlotShape  `yaml:"slot"`  // 转子槽型
	Steel SteelGrade `yaml:"steel"` // 硅钢片牌号

	// 绕组参数
	LE   int     `yaml:"LE"`   // 绕组型式 0-双层叠 1-单层同心 2-单层交叉 3-单层链
	A    int     `yaml:"a"`    // 并联支路数
	Ns   int     `yaml:"Ns"`   // 每槽导体数
	Nt1  int     `yaml:"Nt1"`  // 第一种导线根数
	D11  float64 `yaml:"d11"`  // 第一种导线直径 mm
	Nt2  int     `yaml:"Nt2"`  // 第二种导线根数
	D12  float64 `yaml:"d12"`  // 第二种导线直径 mm
	D    float64 `yaml:"d"`    // 绕组端部伸出长度 mm
	Y    int     `yaml:"y"`    // 绕组节距
	Wgco string  `yaml:"wgco"` // 绕组连接方式 Y-星形 J-三角形

	// 永磁体参数
	Lev    int     `yaml:"Lev"`    // 磁路结构 1-径向 2-切向
	Magnet int     `yaml:"magnet"` // 永磁材料 1-钕铁硼 2-铁氧体
	Br0    float64 `yaml:"Br0"`    // 20℃剩磁密度 T
	Hc0    float64 `yaml:"Hc0"`    // 20℃矫顽力 kA/m
	HM     float64 `yaml:"hM"`     // 永磁体厚度 mm
	BM     float64 `yaml:"bM"`     // 永磁体宽度 mm
	LM     float64 `yaml:"LM"`     // 永磁体长度 mm
	ROUm   float64 `yaml:"ROUm"`   // 永磁体密度 kg/m³
	Sigma0 float64 `yaml:"sigma0"` // 漏磁系数

	// 其他参数
	T    float64 `yaml:"t"`    // 工作温度 ℃
	Pfwl float64 `yaml:"pfwl"` // 机械损耗标么值
	Psl  float64 `yaml:"psl"`  // 杂散损耗标么值
	Kq   float64 `yaml:"Kq"`   // 交轴绕组系数
}

// DefaultSpec 参考设计：15kW 380V 三相 50Hz 两对极异步启动永磁同步电动机
func DefaultSpec() MotorSpec {
	return MotorSpec{
		PN: 15.0, UN: 380.0, M: 3, F: 50.0, P: 2,
		Cosfi: 0.95, Eff: 0.935,

		D1: 260.0, Di1: 170.0, La: 190.0, G: 0.65, G12: 0.15,
		Q1: 36, Q2: 32, Di2: 60.0,

		B01: 3.8, H01: 0.8, B1: 7.7, Alfa1: 30.0, R1: 5.1, H12: 15.2, Sks: "Y",

		B02: 2.0, H02: 0.8, Br1: 6.4, Br2: 5.5, Hr12: 15.0, Alfa2: 30.0, AR: 180.0,

		Slot: SlotPear, Steel: GradeDW315,

		LE: 2, A: 1, Ns: 13, Nt1: 2, D11: 1.20, Nt2: 3, D12: 1.25,
		D: 15.0, Y: 9, Wgco: "Y",

		Lev: 1, Magnet: 1, Br0: 1.15, Hc0: 875.0,
		HM: 5.3, BM: 110.0, LM: 190.0, ROUm: 7400.0, Sigma0: 1.28,

		T: 75.0, Pfwl: 0.0107, Psl: 0.015, Kq: 0.36,
	}
}

// Validate 校验输入参数，发现第一个非法字段即返回 InvalidInputError
// 校验在流水线任何阶段执行之前完成
func (s *MotorSpec) Validate() error {
	type check struct {
		name   string
		value  float64
		ok     bool
		reason string
	}
	positive := func(name string, v float64) check {
		return check{name, v, v > 0, "必须为正数"}
	}
	checks := []check{
		positive("PN", s.PN),
		positive("UN", s.UN),
		{"m", float64(s.M), s.M == 1 || s.M == 3, "相数仅支持 1 或 3"},
		positive("f", s.F),
		{"p", float64(s.P), s.P >= 1, "极对数必须不小于 1"},
		{"cosfi", s.Cosfi, s.Cosfi > 0 && s.Cosfi <= 1, "必须在 (0,1] 区间"},
		{"eff", s.Eff, s.Eff > 0 && s.Eff < 1, "必须在 (0,1) 区间"},
		positive("D1", s.D1),
		positive("Di1", s.Di1),
		{"Di1", s.Di1, s.Di1 < s.D1, "定子内径必须小于外径"},
		positive("La", s.La),
		positive("g", s.G),
		{"g12", s.G12, s.G12 >= 0, "不允许为负数"},
		{"Q1", float64(s.Q1), s.Q1 > 0, "必须为正整数"},
		{"Q2", float64(s.Q2), s.Q2 > 0, "必须为正整数"},
		positive("Di2", s.Di2),
		positive("b01", s.B01),
		positive("h01", s.H01),
		positive("b1", s.B1),
		positive("R1", s.R1),
		positive("h12", s.H12),
		positive("b02", s.B02),
		positive("h02", s.H02),
		positive("br1", s.Br1),
		positive("br2", s.Br2),
		positive("hr12", s.Hr12),
		positive("AR", s.AR),
		{"slot", float64(s.Slot), s.Slot.Valid(), "未知槽型"},
		{"steel", float64(s.Steel), s.Steel.Valid(), "未知硅钢片牌号"},
		{"a", float64(s.A), s.A >= 1, "并联支路数必须不小于 1"},
		{"Ns", float64(s.Ns), s.Ns >= 1, "每槽导体数必须不小于 1"},
		{"Nt1", float64(s.Nt1), s.Nt1 >= 1, "导线根数必须不小于 1"},
		positive("d11", s.D11),
		{"Nt2", float64(s.Nt2), s.Nt2 >= 0, "不允许为负数"},
		{"d12", s.D12, s.Nt2 == 0 || s.D12 > 0, "必须为正数"},
		{"y", float64(s.Y), s.Y >= 1, "绕组节距必须不小于 1"},
		{"Lev", float64(s.Lev), s.Lev == 1 || s.Lev == 2, "磁路结构仅支持 1 或 2"},
		{"magnet", float64(s.Magnet), s.Magnet == 1 || s.Magnet == 2, "永磁材料仅支持 1 或 2"},
		positive("Br0", s.Br0),
		positive("Hc0", s.Hc0),
		positive("hM", s.HM),
		positive("bM", s.BM),
		positive("LM", s.LM),
		positive("ROUm", s.ROUm),
		{"sigma0", s.Sigma0, s.Sigma0 >= 1, "漏磁系数必须不小于 1"},
		{"pfwl", s.Pfwl, s.Pfwl >= 0, "不允许为负数"},
		{"psl", s.Psl, s.Psl >= 0, "不允许为负数"},
		{"Kq", s.Kq, s.Kq > 0, "必须为正数"},
	}
	for _, c := range checks {
		if !c.ok {
			return &InvalidInputError{Field: c.name, Value: c.value, Reason: c.reason}
		}
	}
	switch s.Sks {
	case "Y", "N", "y", "n":
	default:
		return &InvalidInputError{Field: "sks", Reason: "斜槽标记仅支持 Y 或 N"}
	}
	switch s.Wgco {
	case "Y", "J", "y", "j":
	default:
		return &InvalidInputError{Field: "wgco", Reason: "绕组连接方式仅支持 Y 或 J"}
	}
	return nil
}

// Star 是否为星形连接
func (s *MotorSpec) Star() bool { return s.Wgco == "Y" || s.Wgco == "y" }

// Skewed 是否斜槽
func (s *MotorSpec) Skewed() bool { return s.Sks == "Y" || s.Sks == "y" }
