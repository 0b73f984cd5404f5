package duct_sizing

import (
	"math"
)

// 層流・乱流の判定に用いる臨界レイノルズ数
const re_critical = 2300.0

/*
管摩擦係数を計算する。

    Args:
        re: レイノルズ数
        e_r: 相対粗度（絶対粗度 / 水力直径）

    Returns:
        管摩擦係数

    Notes:
        Re <= 0 または非有限の場合は未定義として NaN を返す。
        Re < 2300 の層流域では 64/Re、それ以外は Haaland の式による。
        Re = 2300 での層流・乱流の不連続は平滑化しない。
*/
func get_lambda(re, e_r float64) float64 {
	if math.IsNaN(re) || math.IsInf(re, 0) || re <= 0.0 {
		return math.NaN()
	}

	if re < re_critical {
		return 64.0 / re
	}

	// Haaland の式（Colebrook 式の陽的近似）
	x := -1.8 * math.Log10(math.Pow(e_r/3.7, 1.11)+6.9/re)
	return 1.0 / (x * x)
}
