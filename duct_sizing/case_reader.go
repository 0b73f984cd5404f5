package duct_sizing

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// 計算ケース1行分
type CaseRow struct {
	Name     string  `csv:"name"`
	Mode     string  `csv:"mode"`
	W_mm     float64 `csv:"width_mm"`
	H_mm     float64 `csv:"height_mm"`
	Q        float64 `csv:"flow"`
	QUnit    string  `csv:"flow_unit"`
	V        float64 `csv:"velocity_ms"`
	Dp       float64 `csv:"dp_pa_m"`
	Theta    float64 `csv:"temperature_c"`
	Rh       float64 `csv:"rh_percent"`
	Material string  `csv:"material"`
}

/*
計算ケースを CSV ファイルから読み込む。

    Args:
        file_path: 計算ケースファイルのパス

    Returns:
        計算ケースのリスト
*/
func ReadCasesCSV(file_path string) []*CaseRow {

	// file is exist
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	// Open the CSV file
	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*CaseRow

	// Unmarshal the CSV data into the slice of CaseRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	return rows
}

/*
計算ケースを xlsx ファイルの先頭シートから読み込む。

    Args:
        file_path: 計算ケースファイルのパス

    Returns:
        計算ケースのリスト

    Notes:
        1行目はヘッダとして読み飛ばす。
        列構成は CSV と同じ（name, mode, width_mm, height_mm, flow, flow_unit,
        velocity_ms, dp_pa_m, temperature_c, rh_percent, material）。
        解釈できない行（不明なモード・単位を含む）は読み飛ばして続行する。
*/
func ReadCasesXlsx(file_path string) []*CaseRow {
	f, err := excelize.OpenFile(file_path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		panic(err)
	}

	var rows []*CaseRow
	for i := 1; i < len(records); i++ {
		row, err := _parse_case_row(records[i])
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

/*
xlsx の1行を計算ケースに変換する。

    Args:
        record: セル文字列のリスト

    Returns:
        計算ケース
*/
func _parse_case_row(record []string) (*CaseRow, error) {
	if len(record) < 11 {
		return nil, fmt.Errorf("bad row")
	}

	to_f := func(s string) float64 {
		if s == "" {
			return 0.0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0.0
		}
		return v
	}

	if !Mode(record[1]).is_valid() {
		return nil, fmt.Errorf("unknown mode: %s", record[1])
	}
	if !FlowUnit(record[5]).is_valid() {
		return nil, fmt.Errorf("unknown flow unit: %s", record[5])
	}

	return &CaseRow{
		Name:     record[0],
		Mode:     record[1],
		W_mm:     to_f(record[2]),
		H_mm:     to_f(record[3]),
		Q:        to_f(record[4]),
		QUnit:    record[5],
		V:        to_f(record[6]),
		Dp:       to_f(record[7]),
		Theta:    to_f(record[8]),
		Rh:       to_f(record[9]),
		Material: record[10],
	}, nil
}

/*
計算ケースを計算入力に変換する。

    Returns:
        計算入力

    Notes:
        温度・相対湿度が共に 0 の場合は標準の空気状態プリセットを用いる。
        magic モードの場合、0 より大きい入力値をそのまま固定項目の目標値とする。
*/
func (self *CaseRow) ToSolveInput() SolveInput {
	air := AirState{Theta: self.Theta, Rh: self.Rh}
	if self.Theta == 0.0 && self.Rh == 0.0 {
		air = GetAirPreset(AirPresetStandard)
	}

	unit := FlowUnit(self.QUnit)
	if unit == "" {
		unit = FlowUnitM3S
	}

	in := SolveInput{
		Mode:     Mode(self.Mode),
		W_mm:     self.W_mm,
		H_mm:     self.H_mm,
		Q:        self.Q,
		QUnit:    unit,
		V:        self.V,
		Dp:       self.Dp,
		Air:      air,
		Material: Material(self.Material),
	}

	// 不明な単位は Dispatch 側で警告として処理するため、ここでは換算しない。
	if in.Mode == ModeMagic && unit.is_valid() {
		in.Locks = ConstraintSet{
			Flow:     Constraint{Locked: self.Q > 0.0, Target: unit.to_m3s(self.Q)},
			Width:    Constraint{Locked: self.W_mm > 0.0, Target: mm_to_m(self.W_mm)},
			Height:   Constraint{Locked: self.H_mm > 0.0, Target: mm_to_m(self.H_mm)},
			Velocity: Constraint{Locked: self.V > 0.0, Target: self.V},
			Dp:       Constraint{Locked: self.Dp > 0.0, Target: self.Dp},
		}
	}

	return in
}
