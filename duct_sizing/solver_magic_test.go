package duct_sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 幅と風速を固定：既定の初期状態（風量 0.1 m3/s, 200 mm 角）がちょうど解になる
func TestSolveMagicWidthVelocity(t *testing.T) {
	cs := ConstraintSet{
		Width:    Constraint{Locked: true, Target: 0.2},
		Velocity: Constraint{Locked: true, Target: 2.5},
	}

	r, ok := SolveMagic(cs, MagicState{}, test_air, MaterialGalvanisedSteel)

	assert.True(t, ok)
	assert.Less(t, r.Rms, solve_rel_tol)
	assert.InEpsilon(t, 0.2, r.W, 1e-9)
	assert.InDelta(t, 2.5, r.V, 1e-3)
}

// 3項目固定：風量・風速・幅から高さが定まる
func TestSolveMagicThreeLocks(t *testing.T) {
	cs := ConstraintSet{
		Flow:     Constraint{Locked: true, Target: 0.15},
		Velocity: Constraint{Locked: true, Target: 3.0},
		Width:    Constraint{Locked: true, Target: 0.25},
	}

	r, ok := SolveMagic(cs, MagicState{}, test_air, MaterialGalvanisedSteel)

	assert.True(t, ok)
	assert.Less(t, r.Rms, solve_rel_tol)
	// 高さ = 風量 / 風速 / 幅 = 0.15 / 3.0 / 0.25 = 0.2 m
	assert.InDelta(t, 0.2, r.H, 1e-3)
	assert.InEpsilon(t, 0.15, r.Q, 1e-9)
	assert.InEpsilon(t, 0.25, r.W, 1e-9)
}

// 固定された風量・幅・高さは摂動されず目標値のまま保たれる
func TestSolveMagicLockedPinned(t *testing.T) {
	cs := ConstraintSet{
		Flow:  Constraint{Locked: true, Target: 0.1},
		Width: Constraint{Locked: true, Target: 0.2},
	}

	r, ok := SolveMagic(cs, MagicState{}, test_air, MaterialGalvanisedSteel)

	assert.True(t, ok)
	assert.Equal(t, 0.1, r.Q)
	assert.Equal(t, 0.2, r.W)
	assert.Less(t, r.Rms, solve_rel_tol)
}

// 幅と圧力損失を固定：固定の刻み比率では厳密収束しない場合でも
// 見つかった最良状態をベストエフォートとして返す
func TestSolveMagicBestEffort(t *testing.T) {
	cs := ConstraintSet{
		Width: Constraint{Locked: true, Target: 0.2},
		Dp:    Constraint{Locked: true, Target: 1.0},
	}

	r, ok := SolveMagic(cs, MagicState{}, test_air, MaterialGalvanisedSteel)

	assert.True(t, ok)
	assert.True(t, math.IsInf(r.Rms, 0) == false && !math.IsNaN(r.Rms))
	assert.Greater(t, r.Q, 0.0)
	assert.Greater(t, r.H, 0.0)
	// 局所解の近傍では圧力損失は目標の 5 % 以内に収まる
	assert.InDelta(t, 1.0, r.Dp, 0.05)
}

// 有限の残差が一度も得られない場合は解なし
func TestSolveMagicNotConverged(t *testing.T) {
	cs := ConstraintSet{
		Width: Constraint{Locked: true, Target: 0.2},
		Dp:    Constraint{Locked: true, Target: math.NaN()},
	}

	_, ok := SolveMagic(cs, MagicState{}, test_air, MaterialGalvanisedSteel)

	assert.False(t, ok)
}

// 摂動後の幅・高さは 10 mm、風量は 1e-6 m3/s を下回らない
func TestSolveMagicFloors(t *testing.T) {
	cs := ConstraintSet{
		Flow:     Constraint{Locked: true, Target: 1e-6},
		Velocity: Constraint{Locked: true, Target: 50.0},
	}

	r, ok := SolveMagic(cs, MagicState{}, test_air, MaterialGalvanisedSteel)

	assert.True(t, ok)
	assert.GreaterOrEqual(t, r.W, magic_min_wh)
	assert.GreaterOrEqual(t, r.H, magic_min_wh)
	assert.GreaterOrEqual(t, r.Q, magic_min_q)
}

func TestCountLocked(t *testing.T) {
	assert.Equal(t, 0, ConstraintSet{}.CountLocked())

	cs := ConstraintSet{
		Flow:     Constraint{Locked: true},
		Width:    Constraint{Locked: true},
		Height:   Constraint{Locked: true},
		Velocity: Constraint{Locked: true},
		Dp:       Constraint{Locked: true},
	}
	assert.Equal(t, 5, cs.CountLocked())
}
