package duct_sizing

import (
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// 計算結果1行分（CSV 出力用）
type ResultRow struct {
	Name     string  `csv:"name"`
	Mode     string  `csv:"mode"`
	W_mm     float64 `csv:"width_mm"`
	H_mm     float64 `csv:"height_mm"`
	Q_m3s    float64 `csv:"flow_m3s"`
	V        float64 `csv:"velocity_ms"`
	Re       float64 `csv:"reynolds"`
	Lambda   float64 `csv:"friction_factor"`
	Dp       float64 `csv:"dp_pa_m"`
	Pv       float64 `csv:"velocity_pressure_pa"`
	D_h_mm   float64 `csv:"hydraulic_diameter_mm"`
	Solved   bool    `csv:"solved"`
	Warnings string  `csv:"warnings"`
}

// 計算結果の記録
// 結果レコードを蓄積し、まとめて CSV に書き出す。
type Recorder struct {
	rows []*ResultRow
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

/*
計算結果を1件追加する。

    Args:
        name: ケース名
        res: 計算結果
*/
func (self *Recorder) Append(name string, res SolveResult) {
	self.rows = append(self.rows, &ResultRow{
		Name:     name,
		Mode:     string(res.Mode),
		W_mm:     res.W_mm,
		H_mm:     res.H_mm,
		Q_m3s:    res.Q,
		V:        res.V,
		Re:       res.Re,
		Lambda:   res.Lambda,
		Dp:       res.Dp,
		Pv:       res.Pv,
		D_h_mm:   res.D_h_mm,
		Solved:   res.Solved,
		Warnings: strings.Join(res.Warnings, ";"),
	})
}

/*
記録済みの結果レコードを取得する。

    Returns:
        結果レコードのリスト
*/
func (self *Recorder) Rows() []*ResultRow {
	return self.rows
}

/*
蓄積した計算結果を CSV ファイルに書き出す。

    Args:
        file_path: 出力先のパス
*/
func (self *Recorder) WriteCSV(file_path string) error {
	file, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&self.rows, file)
}
