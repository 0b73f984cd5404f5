package duct_sizing

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// 拘束条件（1項目分）
type Constraint struct {
	Locked bool    // 固定するか否か
	Target float64 // 目標値
}

// 拘束条件の集合
// 固定できる項目は 風量・幅・高さ・風速・圧力損失 の5項目。
type ConstraintSet struct {
	Flow     Constraint // 風量, m3/s
	Width    Constraint // 幅, m
	Height   Constraint // 高さ, m
	Velocity Constraint // 風速, m/s
	Dp       Constraint // 圧力損失, Pa/m
}

/*
固定された項目の数を数える。

    Returns:
        固定された項目の数
*/
func (cs ConstraintSet) CountLocked() int {
	n := 0
	for _, c := range []Constraint{cs.Flow, cs.Width, cs.Height, cs.Velocity, cs.Dp} {
		if c.Locked {
			n++
		}
	}
	return n
}

// 多変数探索の初期状態
type MagicState struct {
	Q float64 // 風量, m3/s
	W float64 // 幅, m
	H float64 // 高さ, m
}

// 多変数探索の結果
type MagicResult struct {
	Q   float64 // 風量, m3/s
	W   float64 // 幅, m
	H   float64 // 高さ, m
	V   float64 // 風速, m/s（評価による導出値）
	Dp  float64 // 圧力損失, Pa/m（評価による導出値）
	Rms float64 // 残差の RMS
}

// 多変数探索の定数
const (
	magic_max_round  = 200    // 最大ラウンド数
	magic_ratio_q    = 1.1    // 風量の摂動比率
	magic_ratio_wh   = 1.05   // 幅・高さの摂動比率
	magic_min_wh     = 0.01   // 幅・高さの下限, m（10 mm）
	magic_min_q      = 1.0e-6 // 風量の下限, m3/s
	magic_default_q  = 0.1    // 風量の既定初期値, m3/s
	magic_default_wh = 0.2    // 幅・高さの既定初期値, m（200 mm）
)

/*
固定された項目に対する正規化残差の RMS を計算する。

    Args:
        cs: 拘束条件の集合
        q: 風量, m3/s
        w: 幅, m
        h: 高さ, m
        air: 空気状態
        m: ダクトの材質

    Returns:
        残差の RMS

    Notes:
        風量・幅・高さは (現在値 - 目標値) / max(目標値, 1e-6)、
        風速・圧力損失は評価結果に対して同じ正規化を行う。
        風速・圧力損失のいずれも固定されていない場合、評価は行わない。
*/
func _get_rms(cs ConstraintSet, q, w, h float64, air AirState, m Material) float64 {
	res := make([]float64, 0, 5)

	if cs.Flow.Locked {
		res = append(res, (q-cs.Flow.Target)/math.Max(cs.Flow.Target, 1e-6))
	}
	if cs.Width.Locked {
		res = append(res, (w-cs.Width.Target)/math.Max(cs.Width.Target, 1e-6))
	}
	if cs.Height.Locked {
		res = append(res, (h-cs.Height.Target)/math.Max(cs.Height.Target, 1e-6))
	}

	if cs.Velocity.Locked || cs.Dp.Locked {
		r := Evaluate(w, h, q, air, m)
		if cs.Velocity.Locked {
			res = append(res, (r.V-cs.Velocity.Target)/math.Max(cs.Velocity.Target, 1e-6))
		}
		if cs.Dp.Locked {
			res = append(res, (r.Dp-cs.Dp.Target)/math.Max(cs.Dp.Target, 1e-6))
		}
	}

	if len(res) == 0 {
		return math.NaN()
	}

	v := mat.NewVecDense(len(res), res)
	return mat.Norm(v, 2) / math.Sqrt(float64(len(res)))
}

/*
固定された項目の目標値を同時に満たす 風量・幅・高さ を座標降下法で探索する。

    Args:
        cs: 拘束条件の集合（固定は2〜3項目であること）
        init: 探索の初期状態（0 以下の値は既定値に置き換える）
        air: 空気状態
        m: ダクトの材質

    Returns:
        以下のタプル
            (1) 探索結果
            (2) 有限の残差が一度でも得られた場合 true

    Notes:
        探索変数は常に {風量, 幅, 高さ} の3変数であり、風速と圧力損失は評価による導出値。
        固定された風量・幅・高さは目標値に据え置き、摂動しない。
        各ラウンドで固定されていない変数ごとに、風量は x1.1 / /1.1、
        幅・高さは x1.05 / /1.05 の摂動を試し、RMS が下がる方を採用する。
        摂動後は幅・高さを 10 mm、風量を 1e-6 m3/s でフロアする。
        固定の刻み比率による貪欲な1軸ずつの降下であり、大域最適は保証しない。
        初期状態から到達できる局所解に収束する（この性質は意図的に保存している）。
        RMS < 1e-4 で打ち切り。有限の RMS が一度も得られなければ解なしとする。
*/
func SolveMagic(cs ConstraintSet, init MagicState, air AirState, m Material) (MagicResult, bool) {
	q, w, h := init.Q, init.W, init.H

	// 固定された項目は目標値そのものを初期値とする。
	if cs.Flow.Locked {
		q = cs.Flow.Target
	}
	if cs.Width.Locked {
		w = cs.Width.Target
	}
	if cs.Height.Locked {
		h = cs.Height.Target
	}

	// 0 以下の初期値は既定値に置き換える。
	if q <= 0.0 {
		q = magic_default_q
	}
	if w <= 0.0 {
		w = magic_default_wh
	}
	if h <= 0.0 {
		h = magic_default_wh
	}
	q = math.Max(q, magic_min_q)
	w = math.Max(w, magic_min_wh)
	h = math.Max(h, magic_min_wh)

	best_rms := math.Inf(1)
	best_q, best_w, best_h := q, w, h
	found := false

	update_best := func() {
		rms := _get_rms(cs, q, w, h, air, m)
		if !math.IsNaN(rms) && !math.IsInf(rms, 0) && rms < best_rms {
			best_rms = rms
			best_q, best_w, best_h = q, w, h
			found = true
		}
	}

	update_best()

	for round := 0; round < magic_max_round; round++ {
		// 風量
		if !cs.Flow.Locked {
			q = _descend_axis(cs, q, w, h, air, m, axis_q)
		}
		// 幅
		if !cs.Width.Locked {
			w = _descend_axis(cs, q, w, h, air, m, axis_w)
		}
		// 高さ
		if !cs.Height.Locked {
			h = _descend_axis(cs, q, w, h, air, m, axis_h)
		}

		update_best()

		if found && best_rms < solve_rel_tol {
			break
		}
	}

	if !found {
		return MagicResult{}, false
	}

	r := Evaluate(best_w, best_h, best_q, air, m)

	return MagicResult{
		Q:   best_q,
		W:   best_w,
		H:   best_h,
		V:   r.V,
		Dp:  r.Dp,
		Rms: best_rms,
	}, true
}

// 探索軸
type magic_axis int

const (
	axis_q magic_axis = iota
	axis_w
	axis_h
)

/*
1つの探索軸について摂動を試し、RMS が最小となる値を返す。

    Args:
        cs: 拘束条件の集合
        q, w, h: 現在の状態
        air: 空気状態
        m: ダクトの材質
        axis: 摂動する軸

    Returns:
        採用された軸の値（改善しない場合は現在値のまま）
*/
func _descend_axis(cs ConstraintSet, q, w, h float64, air AirState, m Material, axis magic_axis) float64 {
	var cur, ratio, floor float64
	switch axis {
	case axis_q:
		cur, ratio, floor = q, magic_ratio_q, magic_min_q
	case axis_w:
		cur, ratio, floor = w, magic_ratio_wh, magic_min_wh
	case axis_h:
		cur, ratio, floor = h, magic_ratio_wh, magic_min_wh
	}

	eval := func(v float64) float64 {
		switch axis {
		case axis_q:
			return _get_rms(cs, v, w, h, air, m)
		case axis_w:
			return _get_rms(cs, q, v, h, air, m)
		default:
			return _get_rms(cs, q, w, v, air, m)
		}
	}

	best_v := cur
	best_r := eval(cur)

	for _, cand := range []float64{cur * ratio, cur / ratio} {
		cand = math.Max(cand, floor)
		r := eval(cand)
		if r < best_r {
			best_r = r
			best_v = cand
		}
	}

	return best_v
}
