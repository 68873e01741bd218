package charts

import (
	"bytes"
	"strings"
	"testing"

	"aspmsm/calc"
	"aspmsm/types"
)

func refRecord(t *testing.T) *calc.Record {
	t.Helper()
	r, err := calc.Run(types.DefaultSpec())
	if err != nil {
		t.Fatalf("计算失败: %v", err)
	}
	return r
}

// TestRender 图表页面生成成功且包含全部图表标题
func TestRender(t *testing.T) {
	c := &Charts{Record: refRecord(t)}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("生成图表页面失败: %v", err)
	}
	out := buf.String()
	for _, title := range []string{"异步转矩曲线", "空载磁密分布", "损耗构成", "电阻电抗参数"} {
		if !strings.Contains(out, title) {
			t.Errorf("图表页面缺少 %q", title)
		}
	}
}

// TestRenderIncomplete 未完成的计算拒绝绘图
func TestRenderIncomplete(t *testing.T) {
	c := &Charts{Record: &calc.Record{}}
	var buf bytes.Buffer
	if err := c.Render(&buf); err == nil {
		t.Error("未完成的计算应拒绝绘图")
	}
}

// TestTorquePNG 转矩曲线 PNG 输出非空且带 PNG 文件头
func TestTorquePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := TorquePNG(&buf, refRecord(t)); err != nil {
		t.Fatalf("绘制转矩曲线失败: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("PNG 输出为空")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("输出不是 PNG 格式")
	}
}
