package load

import (
	"bytes"
	"errors"
	"testing"

	"aspmsm/types"
)

// TestLoadEmpty 空设计文件等价于参考设计
func TestLoadEmpty(t *testing.T) {
	spec, err := LoadString("")
	if err != nil {
		t.Fatalf("空设计文件加载失败: %v", err)
	}
	if spec != types.DefaultSpec() {
		t.Error("空设计文件应返回参考设计")
	}
}

// TestLoadOverride 设计文件中的字段覆盖参考设计值，其余保持缺省
func TestLoadOverride(t *testing.T) {
	spec, err := LoadString("PN: 22.0\nsteel: DR510-50\nslot: 圆形槽\n")
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if spec.PN != 22.0 {
		t.Errorf("PN 未被覆盖: %v", spec.PN)
	}
	if spec.Steel != types.GradeDR510 {
		t.Errorf("硅钢片牌号未被覆盖: %v", spec.Steel)
	}
	if spec.Slot != types.SlotRound {
		t.Errorf("槽型未被覆盖: %v", spec.Slot)
	}
	if spec.UN != 380.0 {
		t.Errorf("未出现的字段应保持缺省值: %v", spec.UN)
	}
}

// TestLoadUnknownField 拼写错误的字段名直接报错而不是静默忽略
func TestLoadUnknownField(t *testing.T) {
	if _, err := LoadString("PNN: 15.0\n"); err == nil {
		t.Error("未知字段应返回错误")
	}
}

// TestLoadInvalid 非法参数在加载阶段即被拒绝
func TestLoadInvalid(t *testing.T) {
	_, err := LoadString("PN: -15.0\n")
	if err == nil {
		t.Fatal("非法参数应返回错误")
	}
	var ie *types.InvalidInputError
	if !errors.As(err, &ie) {
		t.Errorf("错误类型应为 InvalidInputError: %T", err)
	}
}

// TestSaveRoundTrip 写出的设计文件可以原样加载回来
func TestSaveRoundTrip(t *testing.T) {
	orig := types.DefaultSpec()
	orig.PN = 18.5
	orig.Steel = types.GradeDR550

	var buf bytes.Buffer
	if err := Save(&buf, orig); err != nil {
		t.Fatalf("写设计文件失败: %v", err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("回读设计文件失败: %v", err)
	}
	if got != orig {
		t.Errorf("回读结果与原设计不一致:\n%+v\n%+v", got, orig)
	}
}
