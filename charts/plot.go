package charts

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"aspmsm/calc"
)

// TorquePNG 将异步转矩曲线绘制为 PNG 图片
// 标签使用 ASCII，避免默认字体缺少中文字形
func TorquePNG(w io.Writer, r *calc.Record) error {
	if r == nil || !r.Completed() {
		return fmt.Errorf("计算未完成，无法绘图")
	}

	p := plot.New()
	p.Title.Text = "Torque-Slip Curve"
	p.X.Label.Text = "slip s"
	p.Y.Label.Text = "T/TN"
	p.Add(plotter.NewGrid())

	curve := r.TorqueCurve()
	pts := make(plotter.XYs, len(curve))
	for i, c := range curve {
		pts[i].X = c.X
		pts[i].Y = c.Y
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("构建转矩曲线失败: %w", err)
	}
	p.Add(line)
	p.Legend.Add("T/TN", line)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("渲染转矩曲线失败: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("写出转矩曲线失败: %w", err)
	}
	return nil
}
