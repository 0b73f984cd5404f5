package duct_sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 標準の空気状態（20 degree C, 50 %）
var test_air = AirState{Theta: 20.0, Rh: 50.0}

/*
具体シナリオの検証。

幅 200 mm x 高さ 200 mm、風量 100 L/s、亜鉛めっき鋼板、20 degree C, 50 %：
    風速 = 0.1 / 0.04 = 2.5 m/s
    水力直径 = 200 mm
    レイノルズ数 ~= 33,000（乱流域）
    圧力損失は Haaland の式による手計算値と 1e-6 の相対誤差で一致すること。
*/
func TestEvaluateReference(t *testing.T) {
	r := Evaluate(0.2, 0.2, 0.1, test_air, MaterialGalvanisedSteel)

	assert.InEpsilon(t, 2.5, r.V, 1e-12)
	assert.InEpsilon(t, 0.2, r.D_h, 1e-12)
	assert.InEpsilon(t, 33056.56982, r.Re, 1e-6)
	assert.InEpsilon(t, 0.02462647948, r.Lambda, 1e-6)
	assert.InEpsilon(t, 0.4613017459, r.Dp, 1e-6)
	assert.InEpsilon(t, 3.746388079, r.Pv, 1e-6)
}

// 評価関数は純粋関数であり、同一入力に対してビット単位で同一の結果を返す
func TestEvaluateIdempotent(t *testing.T) {
	a := Evaluate(0.35, 0.25, 0.42, AirState{Theta: 26.0, Rh: 60.0}, MaterialAluminium)
	b := Evaluate(0.35, 0.25, 0.42, AirState{Theta: 26.0, Rh: 60.0}, MaterialAluminium)

	assert.Equal(t, a, b)
}

// 断面積 0 の境界：風速 0、レイノルズ数 0、圧力損失 +Inf、管摩擦係数 NaN
func TestEvaluateZeroArea(t *testing.T) {
	for _, r := range []PerformanceResult{
		Evaluate(0.0, 0.2, 0.1, test_air, MaterialGalvanisedSteel),
		Evaluate(0.2, 0.0, 0.1, test_air, MaterialGalvanisedSteel),
		Evaluate(0.0, 0.0, 0.1, test_air, MaterialGalvanisedSteel),
	} {
		assert.Equal(t, 0.0, r.V)
		assert.Equal(t, 0.0, r.Re)
		assert.True(t, math.IsInf(r.Dp, 1))
		assert.True(t, math.IsNaN(r.Lambda))
	}
}

// 単調性：他の条件を固定したとき、寸法の増加に対して圧力損失は増加しない
// （二分法の分岐規則が成り立つための前提条件）
func TestEvaluateMonotonicity(t *testing.T) {
	prev := math.Inf(1)
	for h := 0.05; h <= 1.0; h += 0.01 {
		dp := Evaluate(0.2, h, 0.1, test_air, MaterialGalvanisedSteel).Dp
		assert.LessOrEqual(t, dp, prev+1e-12, "h=%f", h)
		prev = dp
	}

	// 幅方向も対称に成り立つ
	prev = math.Inf(1)
	for w := 0.05; w <= 1.0; w += 0.01 {
		dp := Evaluate(w, 0.2, 0.1, test_air, MaterialGalvanisedSteel).Dp
		assert.LessOrEqual(t, dp, prev+1e-12, "w=%f", w)
		prev = dp
	}
}

// 材質の粗度が大きいほど（乱流域では）圧力損失が大きい
func TestEvaluateMaterialOrder(t *testing.T) {
	dp_galv := Evaluate(0.2, 0.2, 0.1, test_air, MaterialGalvanisedSteel).Dp
	dp_mild := Evaluate(0.2, 0.2, 0.1, test_air, MaterialMildSteel).Dp
	dp_alu := Evaluate(0.2, 0.2, 0.1, test_air, MaterialAluminium).Dp
	dp_pvc := Evaluate(0.2, 0.2, 0.1, test_air, MaterialPVC).Dp

	assert.Greater(t, dp_galv, dp_mild)
	assert.Greater(t, dp_mild, dp_alu)
	assert.Greater(t, dp_alu, dp_pvc)
}

// 未知の材質は亜鉛めっき鋼板の粗度にフォールバックする
func TestMaterialFallback(t *testing.T) {
	assert.Equal(t, MaterialGalvanisedSteel.get_epsilon(), Material("unknown").get_epsilon())
}
