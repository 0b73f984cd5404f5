package duct_sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 求めた最大風量で再評価すると圧力損失は目標以下（許容誤差内）になる
func TestSolveMaxFlowFeasible(t *testing.T) {
	q := SolveMaxFlow(0.2, 0.2, 1.0, test_air, MaterialGalvanisedSteel)

	assert.InEpsilon(t, 0.1523981405, q, 1e-6)

	dp := Evaluate(0.2, 0.2, q, test_air, MaterialGalvanisedSteel).Dp
	assert.LessOrEqual(t, dp, 1.0*(1.0+solve_rel_tol))
}

// 目標圧力損失を上げると最大風量は厳密に増加する
func TestSolveMaxFlowTargetOrder(t *testing.T) {
	q1 := SolveMaxFlow(0.2, 0.2, 1.0, test_air, MaterialGalvanisedSteel)
	q2 := SolveMaxFlow(0.2, 0.2, 2.0, test_air, MaterialGalvanisedSteel)

	assert.Greater(t, q1, 0.0)
	assert.Greater(t, q2, q1)
}

// 前提条件を満たさない入力は 0 を返す
func TestSolveMaxFlowPreconditions(t *testing.T) {
	assert.Equal(t, 0.0, SolveMaxFlow(0.0, 0.2, 1.0, test_air, MaterialGalvanisedSteel))
	assert.Equal(t, 0.0, SolveMaxFlow(0.2, 0.0, 1.0, test_air, MaterialGalvanisedSteel))
	assert.Equal(t, 0.0, SolveMaxFlow(0.2, 0.2, 0.0, test_air, MaterialGalvanisedSteel))
	assert.Equal(t, 0.0, SolveMaxFlow(0.2, 0.2, -1.0, test_air, MaterialGalvanisedSteel))
}
