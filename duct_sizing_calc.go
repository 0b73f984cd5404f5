package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"duct_sizing_calc/duct_sizing"
	"duct_sizing_calc/server"
	"github.com/gorilla/websocket"
)

type Config struct {
	CasesPath  string
	OutputPath string
	ReportPath string
	Serve      bool
	Addr       string
}

/*
ダクト算定処理の実行

    Args:
        cases_path (str): 計算ケースファイル（CSV または xlsx）へのパス
        output_path (str): 計算結果 CSV の出力先
        report_path (str): PDF レポートの出力先（空の場合は出力しない）
*/
func run(
	cases_path string,
	output_path string,
	report_path string,
) {
	// 計算ケースファイルの読み込み
	log.Printf("計算ケースファイルの読み込み開始")
	var rows []*duct_sizing.CaseRow
	if strings.HasSuffix(cases_path, ".xlsx") {
		rows = duct_sizing.ReadCasesXlsx(cases_path)
	} else {
		rows = duct_sizing.ReadCasesCSV(cases_path)
	}
	log.Printf("計算ケース数: %d", len(rows))

	// ---- 計算 ----

	recorder := duct_sizing.NewRecorder()

	s := time.Now()
	for i, row := range rows {
		name := row.Name
		if name == "" {
			name = fmt.Sprintf("case_%d", i+1)
		}

		res := duct_sizing.Dispatch(row.ToSolveInput())
		for _, warn := range res.Warnings {
			log.Printf("%s: %s", name, warn)
		}

		recorder.Append(name, res)
	}
	e := time.Now()
	log.Printf("計算時間: %v", e.Sub(s))

	// ---- 出力 ----

	// 出力ディレクトリの作成
	out_dir := filepath.Dir(output_path)
	if _, err := os.Stat(out_dir); os.IsNotExist(err) {
		os.Mkdir(out_dir, 0755)
	}

	log.Printf("計算結果CSVの書き出し: %s", output_path)
	if err := recorder.WriteCSV(output_path); err != nil {
		log.Fatal(err)
	}

	if report_path != "" {
		log.Printf("PDFレポートの書き出し: %s", report_path)
		if err := duct_sizing.WriteReport(report_path, recorder.Rows()); err != nil {
			log.Fatal(err)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	var conf Config

	flag.StringVar(&conf.CasesPath, "i", "cases.csv", "計算ケースファイル（CSV または xlsx）")
	flag.StringVar(&conf.OutputPath, "o", "out/result.csv", "計算結果CSVの出力先")
	flag.StringVar(&conf.ReportPath, "report", "", "PDFレポートの出力先")
	flag.BoolVar(&conf.Serve, "serve", false, "websocket サーバーとして起動する")
	flag.StringVar(&conf.Addr, "addr", "", "サーバーの待ち受けアドレス（未指定の場合は設定ファイルに従う）")
	flag.Parse()

	if conf.Serve {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
		s := server.NewServer(conf.Addr, upgrader)
		s.Serve()
		return
	}

	run(conf.CasesPath, conf.OutputPath, conf.ReportPath)
}
