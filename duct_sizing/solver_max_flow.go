package duct_sizing

import (
	"math"
)

// 風量探索の定数
const (
	flow_search_min = 1.0e-6 // 風量探索範囲の下限, m3/s
	flow_search_max = 10.0   // 風量探索範囲の上限, m3/s
	flow_max_iter   = 80     // 風量探索の最大反復回数
)

/*
両寸法と目標圧力損失から、目標を超えない最大の風量を二分法で求める。

    Args:
        w: ダクト幅, m
        h: ダクト高さ, m
        dp_target: 目標圧力損失, Pa/m
        air: 空気状態
        m: ダクトの材質

    Returns:
        最大風量, m3/s

    Notes:
        探索中に見つかった実行可能な風量（dp <= dp_target）の最大値を保持する。
        評価結果が非有限になった時点で探索を打ち切る。
        実行可能な風量が一度も見つからなかった場合は 0 を返す。
*/
func SolveMaxFlow(w, h, dp_target float64, air AirState, m Material) float64 {
	if w <= 0.0 || h <= 0.0 || dp_target <= 0.0 {
		return 0.0
	}

	lo := flow_search_min
	hi := flow_search_max

	best := 0.0

	for i := 0; i < flow_max_iter; i++ {
		mid := 0.5 * (lo + hi)

		dp := Evaluate(w, h, mid, air, m).Dp
		if math.IsNaN(dp) || math.IsInf(dp, 0) {
			break
		}

		if dp <= dp_target {
			best = mid
			lo = mid
		} else {
			hi = mid
		}

		if math.Abs(dp-dp_target)/math.Max(dp_target, 1e-6) < solve_rel_tol {
			break
		}
	}

	return best
}
