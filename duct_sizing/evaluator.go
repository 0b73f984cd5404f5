package duct_sizing

import (
	"math"
)

// ダクト性能の評価結果
type PerformanceResult struct {
	V      float64 // 風速, m/s
	Re     float64 // レイノルズ数
	Lambda float64 // 管摩擦係数
	Dp     float64 // 単位長さあたりの圧力損失, Pa/m
	Pv     float64 // 動圧, Pa
	D_h    float64 // 水力直径, m
}

/*
矩形ダクトの性能を評価する。

    Args:
        w: ダクト幅, m
        h: ダクト高さ, m
        q: 風量, m3/s
        air: 空気状態
        m: ダクトの材質

    Returns:
        ダクト性能の評価結果

    Notes:
        Darcy-Weisbach の式 dp = lambda rho v^2 / (2 D_h) による。
        断面積が 0 の場合、風速は 0、圧力損失は +Inf となる。
        幾何学的に退化した入力でも例外を送出せず、NaN / +Inf を番兵値として返す。
        全てのソルバーが繰り返し呼び出す評価関数であり、副作用を持たない。
*/
func Evaluate(w, h, q float64, air AirState, m Material) PerformanceResult {
	g := DuctGeometry{W: w, H: h}
	area := g.get_area()
	d_h := g.get_d_h()

	// 空気の物性値
	rho := get_rho_air(_get_f(), air.Theta, air.Rh)
	mu := get_mu_air(air.Theta)

	// 風速, m/s
	var v float64
	if area > 0.0 {
		v = q / area
	} else {
		v = 0.0
	}

	// レイノルズ数
	re := rho * math.Abs(v) * d_h / mu

	// 相対粗度
	// 水力直径が 0 の場合のゼロ除算を避けるため下限 1e-9 を設ける。
	e_r := m.get_epsilon() / math.Max(d_h, 1e-9)

	// 管摩擦係数
	lambda := get_lambda(re, e_r)

	// 単位長さあたりの圧力損失, Pa/m
	var dp float64
	if d_h > 0.0 {
		dp = lambda * rho * v * v / (2.0 * d_h)
	} else {
		dp = math.Inf(1)
	}

	// 動圧, Pa
	p_v := 0.5 * rho * v * v

	return PerformanceResult{
		V:      v,
		Re:     re,
		Lambda: lambda,
		Dp:     dp,
		Pv:     p_v,
		D_h:    d_h,
	}
}
