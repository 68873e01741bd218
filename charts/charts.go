// Package charts 计算结果可视化
// 生成单页 HTML 图表集，也可直接挂到 HTTP 服务上查看
package charts

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	echtypes "github.com/go-echarts/go-echarts/v2/types"

	"aspmsm/calc"
)

// Charts 计算结果绘图器
type Charts struct {
	Record *calc.Record
}

// Render 生成图表页面
func (c *Charts) Render(w io.Writer) error {
	if c.Record == nil || !c.Record.Completed() {
		return fmt.Errorf("计算未完成，无法绘图")
	}

	// 异步转矩-转差率曲线
	torque := charts.NewLine()
	torque.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echtypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "异步转矩曲线",
			Subtitle: "异步电磁转矩（额定转矩标么值）随转差率变化曲线",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "转差率 s",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "T/TN",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	curve := c.Record.TorqueCurve()
	xs := make([]string, len(curve))
	items := make([]opts.LineData, len(curve))
	for i, p := range curve {
		xs[i] = fmt.Sprintf("%.2f", p.X)
		items[i] = opts.LineData{Value: p.Y}
	}
	torque.SetXAxis(xs)
	torque.AddSeries("T/TN", items)

	// 空载磁路各区段磁密
	flux := charts.NewBar()
	flux.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echtypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "空载磁密分布",
			Subtitle: "空载磁路各区段磁密 T",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	profile := c.Record.FluxProfile()
	fluxNames := make([]string, len(profile))
	fluxItems := make([]opts.BarData, len(profile))
	for i, v := range profile {
		fluxNames[i] = v.Name
		fluxItems[i] = opts.BarData{Value: v.Value}
	}
	flux.SetXAxis(fluxNames)
	flux.AddSeries("磁密", fluxItems)

	// 损耗构成
	loss := charts.NewPie()
	loss.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echtypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "损耗构成",
			Subtitle: "额定负载点各项损耗 W",
		}),
	)
	lossItems := make([]opts.PieData, 0)
	for _, v := range c.Record.LossBreakdown() {
		lossItems = append(lossItems, opts.PieData{Name: v.Name, Value: v.Value})
	}
	loss.AddSeries("损耗", lossItems)

	// 电阻与电抗分量
	imp := charts.NewBar()
	imp.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echtypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "电阻电抗参数",
			Subtitle: "定转子电阻与各漏抗分量 Ω",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	breakdown := c.Record.ImpedanceBreakdown()
	impNames := make([]string, len(breakdown))
	impItems := make([]opts.BarData, len(breakdown))
	for i, v := range breakdown {
		impNames[i] = v.Name
		impItems[i] = opts.BarData{Value: v.Value}
	}
	imp.SetXAxis(impNames)
	imp.AddSeries("阻抗", impItems)

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		torque,
		flux,
		loss,
		imp,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
