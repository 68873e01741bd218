// 异步启动永磁同步电动机电磁计算程序
// 读取 YAML 设计文件（缺省为参考设计），执行完整电磁计算，
// 输出方案清单，可选生成图表页面或启动查看服务
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"aspmsm/calc"
	"aspmsm/charts"
	"aspmsm/load"
	"aspmsm/report"
	"aspmsm/types"
)

func main() {
	var (
		design = flag.String("design", "", "YAML 设计文件路径，缺省使用参考设计")
		steel  = flag.String("steel", "", "硅钢片牌号，覆盖设计文件（如 DW315-50）")
		slot   = flag.String("slot", "", "转子槽型，覆盖设计文件（pear/semi-pear/round/bevel-round）")
		out    = flag.String("o", "", "方案清单输出文件，缺省输出到标准输出")
		html   = flag.String("html", "", "图表页面输出文件")
		png    = flag.String("png", "", "转矩曲线 PNG 输出文件")
		serve  = flag.String("serve", "", "启动图表查看服务的监听地址（如 :8080）")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("aspmsm: ")

	spec := types.DefaultSpec()
	if *design != "" {
		var err error
		spec, err = load.LoadFile(*design)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *steel != "" {
		g, err := types.ParseSteelGrade(*steel)
		if err != nil {
			log.Fatal(err)
		}
		spec.Steel = g
	}
	if *slot != "" {
		s, err := types.ParseSlotShape(*slot)
		if err != nil {
			log.Fatal(err)
		}
		spec.Slot = s
	}

	rec, err := calc.Run(spec)
	if err != nil {
		log.Fatal(err)
	}
	for _, a := range rec.Advisories {
		log.Println(a)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Write(w, rec); err != nil {
		log.Fatal(err)
	}

	c := &charts.Charts{Record: rec}
	if *html != "" {
		f, err := os.Create(*html)
		if err != nil {
			log.Fatal(err)
		}
		if err := c.Render(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		f.Close()
	}
	if *png != "" {
		f, err := os.Create(*png)
		if err != nil {
			log.Fatal(err)
		}
		if err := charts.TorquePNG(f, rec); err != nil {
			f.Close()
			log.Fatal(err)
		}
		f.Close()
	}
	if *serve != "" {
		fmt.Printf("图表查看服务: http://%s/\n", *serve)
		http.HandleFunc("/", c.Handler)
		log.Fatal(http.ListenAndServe(*serve, nil))
	}
}
