package duct_sizing

import (
	"math"
)

// 計算モード
type Mode string

// 計算モードの定数
const (
	ModeDirect    Mode = "direct"    // 直接評価：寸法と風量が全て既知
	ModeDimension Mode = "dimension" // 寸法算定：片方の寸法を求める
	ModeMaxFlow   Mode = "max_flow"  // 最大風量：目標を満たす最大風量を求める
	ModeMagic     Mode = "magic"     // 多変数探索：固定項目の目標を同時に満たす状態を求める
)

// 風速の注意喚起のしきい値, m/s
const v_advisory_limit = 15.0

// 入力に対する注意・警告メッセージ
const (
	WarnHighVelocity       = "風速が15m/sを超えています。ダクトの適用可否を確認してください。"
	WarnConflictTargets    = "目標風速と目標圧力損失は同時に指定できません。"
	WarnNeedTarget         = "目標風速または目標圧力損失のいずれかを指定してください。"
	WarnTooManyLocked      = "固定された項目が多すぎます。固定は3項目までにしてください。"
	WarnNeedWidth          = "幅を入力してください。"
	WarnNeedHeight         = "高さを入力してください。"
	WarnNeedFlowOrVelocity = "風量または風速を入力してください。"
	WarnNeedMoreInput      = "入力が不足しています。"
	WarnNoSolution         = "解が見つかりませんでした。"
	WarnNotConverged       = "収束しませんでした。"
	WarnUnknownMode        = "不明な計算モードです。"
	WarnUnknownUnit        = "不明な風量の単位です。"
)

/*
計算モードとして解釈できるかを返す。

    Notes:
        外部入力（CSV・xlsx・通信）由来のモード文字列の検証に用いる。
*/
func (m Mode) is_valid() bool {
	switch m {
	case ModeDirect, ModeDimension, ModeMaxFlow, ModeMagic:
		return true
	default:
		return false
	}
}

// 1回分の計算入力
// 寸法は mm、風量は QUnit に従う単位、風速は m/s、圧力損失は Pa/m で与える。
type SolveInput struct {
	Mode     Mode
	W_mm     float64       // 幅, mm（0 以下は未入力扱い）
	H_mm     float64       // 高さ, mm（0 以下は未入力扱い）
	Q        float64       // 風量（単位は QUnit に従う）
	QUnit    FlowUnit      // 風量の単位
	V        float64       // 風速または目標風速, m/s（0 以下は未入力扱い）
	Dp       float64       // 目標圧力損失, Pa/m（0 以下は未入力扱い）
	Air      AirState      // 空気状態
	Material Material      // ダクトの材質
	Locks    ConstraintSet // 拘束条件（magic モードのみ使用）
}

// 1回分の計算結果
// 各計算は独立かつ無状態であり、結果は呼び出しごとに新しく生成される。
type SolveResult struct {
	Mode     Mode
	W_mm     float64 // 幅, mm
	H_mm     float64 // 高さ, mm
	Q        float64 // 風量, m3/s
	V        float64 // 風速, m/s
	Re       float64 // レイノルズ数
	Lambda   float64 // 管摩擦係数
	Dp       float64 // 単位長さあたりの圧力損失, Pa/m
	Pv       float64 // 動圧, Pa
	D_h_mm   float64 // 水力直径, mm
	Solved   bool    // 評価・探索に成功した場合 true
	Warnings []string
}

/*
計算モードに応じて適切なソルバーを選択・実行する。

    Args:
        in: 計算入力

    Returns:
        計算結果（警告メッセージのリストを含む）

    Notes:
        入力の組み合わせが不正な場合も例外は送出せず、警告メッセージと
        （可能であれば）ベストエフォートの結果を返す。
        不明なモード・風量単位の文字列も同様に警告として返す。
*/
func Dispatch(in SolveInput) SolveResult {
	if !in.Mode.is_valid() {
		return SolveResult{Mode: in.Mode, Warnings: []string{WarnUnknownMode}}
	}
	if !in.QUnit.is_valid() {
		return SolveResult{Mode: in.Mode, Warnings: []string{WarnUnknownUnit}}
	}

	switch in.Mode {
	case ModeDirect:
		return _dispatch_direct(in)
	case ModeDimension:
		return _dispatch_dimension(in)
	case ModeMaxFlow:
		return _dispatch_max_flow(in)
	case ModeMagic:
		return _dispatch_magic(in)
	default:
		panic("invalid mode")
	}
}

/*
直接評価モード。

    Notes:
        寸法と風量が全て既知の場合に評価関数を1回呼び出す。
        風速が 15 m/s を超える場合は注意喚起の警告を付す。
*/
func _dispatch_direct(in SolveInput) SolveResult {
	w := mm_to_m(in.W_mm)
	h := mm_to_m(in.H_mm)
	q := in.QUnit.to_m3s(in.Q)

	r := Evaluate(w, h, q, in.Air, in.Material)

	res := _to_result(ModeDirect, w, h, q, r)
	res.Solved = true

	if r.V > v_advisory_limit {
		res.Warnings = append(res.Warnings, WarnHighVelocity)
	}

	return res
}

/*
寸法算定モード。

    Notes:
        幅・高さのうち一方のみが入力されていること。
        風速目標がある場合は必要断面積（風量/風速）から、
        圧力損失目標がある場合は二分法から、それぞれ寸法の候補を求め、
        両方の候補がある場合は大きい方（風速が低くなる安全側）を採用する。
        いずれの候補の導出にも風量の入力を要する。
*/
func _dispatch_dimension(in SolveInput) SolveResult {
	w := mm_to_m(in.W_mm)
	h := mm_to_m(in.H_mm)
	q := in.QUnit.to_m3s(in.Q)

	// 幅・高さのうち一方のみが入力されていること。
	if (w > 0.0) == (h > 0.0) {
		return SolveResult{Mode: ModeDimension, Warnings: []string{WarnNoSolution}}
	}

	is_width_fixed := w > 0.0

	var fixed float64
	if is_width_fixed {
		fixed = w
	} else {
		fixed = h
	}

	// 寸法の候補
	cand := 0.0
	has_cand := false

	// 風速目標からの候補：必要断面積 = 風量 / 風速
	if q > 0.0 && in.V > 0.0 {
		c := q / in.V / fixed
		cand = c
		has_cand = true
	}

	// 圧力損失目標からの候補：二分法
	if q > 0.0 && in.Dp > 0.0 {
		if c, _, ok := SolveMissingDimension(fixed, is_width_fixed, q, in.Dp, in.Air, in.Material); ok {
			// 両候補がある場合は大きい方を採用する（安全側の寸法）。
			cand = math.Max(cand, c)
			has_cand = true
		}
	}

	if !has_cand {
		return SolveResult{Mode: ModeDimension, Warnings: []string{WarnNoSolution}}
	}

	if is_width_fixed {
		h = cand
	} else {
		w = cand
	}

	// 候補の導出はいずれも風量を要するため、ここでは q > 0 が保証される。
	r := Evaluate(w, h, q, in.Air, in.Material)

	res := _to_result(ModeDimension, w, h, q, r)
	res.Solved = true

	return res
}

/*
最大風量モード。

    Notes:
        両寸法が既知であること。目標風速と目標圧力損失は排他であり、
        両方指定はエラー、どちらも未指定もエラーとして警告を返す。
        風速目標の場合は 風速 x 断面積 で直接求まるため探索は行わない。
*/
func _dispatch_max_flow(in SolveInput) SolveResult {
	w := mm_to_m(in.W_mm)
	h := mm_to_m(in.H_mm)

	has_v := in.V > 0.0
	has_dp := in.Dp > 0.0

	if has_v && has_dp {
		return SolveResult{Mode: ModeMaxFlow, Warnings: []string{WarnConflictTargets}}
	}
	if !has_v && !has_dp {
		return SolveResult{Mode: ModeMaxFlow, Warnings: []string{WarnNeedTarget}}
	}

	var q float64
	if has_v {
		q = in.V * DuctGeometry{W: w, H: h}.get_area()
	} else {
		q = SolveMaxFlow(w, h, in.Dp, in.Air, in.Material)
		if q <= 0.0 {
			return SolveResult{Mode: ModeMaxFlow, Warnings: []string{WarnNoSolution}}
		}
	}

	r := Evaluate(w, h, q, in.Air, in.Material)

	res := _to_result(ModeMaxFlow, w, h, q, r)
	res.Solved = true

	return res
}

/*
多変数探索モード。

    Notes:
        固定項目が4つ以上の場合は過剰拘束、1つ以下の場合は拘束不足として
        警告のみを返し探索は行わない。拘束不足の警告では、次に入力すべき
        項目を 幅 → 高さ → 風量または風速 の優先順で案内する。
*/
func _dispatch_magic(in SolveInput) SolveResult {
	cs := in.Locks
	n := cs.CountLocked()

	if n >= 4 {
		return SolveResult{Mode: ModeMagic, Warnings: []string{WarnTooManyLocked}}
	}

	if n < 2 {
		var warn string
		switch {
		case !cs.Width.Locked:
			warn = WarnNeedWidth
		case !cs.Height.Locked:
			warn = WarnNeedHeight
		case !cs.Flow.Locked && !cs.Velocity.Locked:
			warn = WarnNeedFlowOrVelocity
		default:
			warn = WarnNeedMoreInput
		}
		return SolveResult{Mode: ModeMagic, Warnings: []string{warn}}
	}

	init := MagicState{
		Q: in.QUnit.to_m3s(in.Q),
		W: mm_to_m(in.W_mm),
		H: mm_to_m(in.H_mm),
	}

	mr, ok := SolveMagic(cs, init, in.Air, in.Material)
	if !ok {
		return SolveResult{Mode: ModeMagic, Warnings: []string{WarnNotConverged}}
	}

	r := Evaluate(mr.W, mr.H, mr.Q, in.Air, in.Material)

	res := _to_result(ModeMagic, mr.W, mr.H, mr.Q, r)
	res.Solved = true

	return res
}

/*
評価結果から計算結果レコードを組み立てる。

    Args:
        mode: 計算モード
        w: 幅, m
        h: 高さ, m
        q: 風量, m3/s
        r: 評価結果
*/
func _to_result(mode Mode, w, h, q float64, r PerformanceResult) SolveResult {
	return SolveResult{
		Mode:   mode,
		W_mm:   m_to_mm(w),
		H_mm:   m_to_mm(h),
		Q:      q,
		V:      r.V,
		Re:     r.Re,
		Lambda: r.Lambda,
		Dp:     r.Dp,
		Pv:     r.Pv,
		D_h_mm: m_to_mm(r.D_h),
	}
}
