package duct_sizing

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

/*
計算結果の一覧を1ページの PDF レポートに書き出す。

    Args:
        file_path: 出力先のパス
        rows: 結果レコードのリスト

    Notes:
        組み込みフォントのみを使用するため、本文は ASCII 表記とする。
*/
func WriteReport(file_path string, rows []*ResultRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Rectangular Duct Sizing Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Cases: %d", len(rows)))
	pdf.Ln(10)

	pdf.SetFont("Courier", "", 9)
	for _, row := range rows {
		line := fmt.Sprintf(
			"%-12s %-9s W=%6.0fmm H=%6.0fmm Q=%7.4fm3/s V=%6.2fm/s dp=%8.4fPa/m",
			row.Name, row.Mode, row.W_mm, row.H_mm, row.Q_m3s, row.V, row.Dp,
		)
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}

	return pdf.OutputFileAndClose(file_path)
}
