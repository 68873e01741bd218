package report

import (
	"bytes"
	"strings"
	"testing"

	"aspmsm/calc"
	"aspmsm/types"
)

// TestWrite 方案清单包含全部分节且关键数值已填入
func TestWrite(t *testing.T) {
	r, err := calc.Run(types.DefaultSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		t.Fatalf("输出方案清单失败: %v", err)
	}
	out := buf.String()
	for _, section := range []string{
		"技术性能指标", "主要尺寸、绕组和定子", "定子绕组参数", "转子",
		"空载磁路计算结果", "额定负载点损耗", "额定负载点热负荷",
		"材料质量", "计算性能（输出额定功率时）", "永磁磁极",
		"永磁体工作点", "电阻、电抗参数", "启动参数",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("清单缺少分节 %q", section)
		}
	}
	if !strings.Contains(out, "DW315-50") {
		t.Error("清单应包含硅钢片牌号")
	}
	if !strings.Contains(out, "梨形槽") {
		t.Error("清单应包含槽型名称")
	}
	if strings.Contains(out, "NaN") || strings.Contains(out, "%!") {
		t.Error("清单包含非法数值或格式化错误")
	}
}

// TestWriteIncomplete 未完成的计算不能输出清单
func TestWriteIncomplete(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &calc.Record{}); err == nil {
		t.Error("未完成的计算应拒绝输出清单")
	}
}
