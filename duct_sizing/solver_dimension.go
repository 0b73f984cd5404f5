package duct_sizing

import (
	"math"
)

// 二分法の共通定数
const (
	dim_search_min = 1.0e-4 // 寸法探索範囲の下限, m
	dim_search_max = 5.0    // 寸法探索範囲の上限, m
	dim_max_iter   = 60     // 寸法探索の最大反復回数
	solve_rel_tol  = 1.0e-4 // 収束判定の相対許容誤差
)

/*
片方の寸法・風量・目標圧力損失から残りの寸法を二分法で求める。

    Args:
        fixed: 固定する寸法, m
        is_width: 固定する寸法が幅の場合 true（このとき高さを求める）
        q: 風量, m3/s
        dp_target: 目標圧力損失, Pa/m
        air: 空気状態
        m: ダクトの材質

    Returns:
        以下のタプル
            (1) 求めた寸法, m
            (2) そのときの圧力損失, Pa/m
            (3) 解が得られた場合 true

    Notes:
        寸法が大きいほど風速が下がり圧力損失が単調に減少することを前提とした二分法。
        dp > dp_target のとき探索区間の下限を引き上げる。
        評価結果が非有限になった時点で探索を打ち切る。
        一度も有限の評価が得られなかった場合は解なしとする。
*/
func SolveMissingDimension(fixed float64, is_width bool, q, dp_target float64, air AirState, m Material) (float64, float64, bool) {
	if fixed <= 0.0 || q <= 0.0 || dp_target <= 0.0 {
		return 0.0, 0.0, false
	}

	lo := dim_search_min
	hi := dim_search_max

	var best_dim, best_dp float64
	found := false

	for i := 0; i < dim_max_iter; i++ {
		mid := 0.5 * (lo + hi)

		var w, h float64
		if is_width {
			w, h = fixed, mid
		} else {
			w, h = mid, fixed
		}

		dp := Evaluate(w, h, q, air, m).Dp
		if math.IsNaN(dp) || math.IsInf(dp, 0) {
			break
		}

		best_dim, best_dp = mid, dp
		found = true

		if math.Abs(dp-dp_target)/math.Max(dp_target, 1e-6) < solve_rel_tol {
			break
		}

		if dp > dp_target {
			lo = mid
		} else {
			hi = mid
		}
	}

	if !found {
		return 0.0, 0.0, false
	}

	return best_dim, best_dp, true
}
