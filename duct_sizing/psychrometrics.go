package duct_sizing

import (
	"math"
)

// 空気状態
type AirState struct {
	Theta float64 // 空気温度, degree C
	Rh    float64 // 相対湿度, %
}

/*
飽和水蒸気圧を計算する。

    Args:
        theta: 空気温度, degree C

    Returns:
        飽和水蒸気圧, Pa

    Notes:
        Magnus-Tetens の近似式による。
        一般的な空調温度範囲を想定しているが、範囲外の温度でもクランプせずに外挿する。
*/
func get_p_vs(theta float64) float64 {
	return 610.94 * math.Exp(17.625*theta/(243.04+theta))
}

/*
湿り空気の密度を計算する。

    Args:
        f: 大気圧, Pa
        theta: 空気温度, degree C
        h: 相対湿度, %

    Returns:
        湿り空気の密度, kg/m3

    Notes:
        水蒸気分圧と乾き空気分圧のそれぞれに理想気体の状態方程式を適用し、両者の和をとる。
        乾き空気分圧は負にならないよう 0 でクランプする。
        （相対湿度と大気圧の組み合わせが病的な場合に密度が負になることを防ぐため。）
*/
func get_rho_air(f, theta, h float64) float64 {
	// 気体定数, J/(kg K)
	const r_d = 287.058 // 乾き空気
	const r_v = 461.495 // 水蒸気

	// 絶対温度, K
	t := theta + 273.15

	// 水蒸気分圧, Pa
	p_v := h / 100.0 * get_p_vs(theta)

	// 乾き空気分圧, Pa
	p_d := math.Max(f-p_v, 0.0)

	return p_d/(r_d*t) + p_v/(r_v*t)
}

/*
空気の粘性係数を計算する。

    Args:
        theta: 空気温度, degree C

    Returns:
        粘性係数, Pa s

    Notes:
        Sutherland の式による。
        基準粘性係数 1.716e-5 Pa s (0 degree C), Sutherland 定数 110.4 K。
*/
func get_mu_air(theta float64) float64 {
	const mu_0 = 1.716e-5 // 基準粘性係数, Pa s
	const t_0 = 273.15    // 基準絶対温度, K
	const s = 110.4       // Sutherland 定数, K

	t := theta + 273.15

	return mu_0 * (t_0 + s) / (t + s) * math.Pow(t/t_0, 1.5)
}

/*
大気圧を求める。

    Returns:
        大気圧, Pa

    Notes:
        標高補正は行わず 101325 Pa に固定する。
*/
func _get_f() float64 {
	return 101325.0
}
