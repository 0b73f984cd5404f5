package duct_sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuctGeometry(t *testing.T) {
	g := DuctGeometry{W: 0.4, H: 0.2}

	assert.InEpsilon(t, 0.08, g.get_area(), 1e-12)
	assert.InEpsilon(t, 1.2, g.get_perimeter(), 1e-12)

	// D_h = 4 A / P = 0.32 / 1.2
	assert.InEpsilon(t, 4.0*0.08/1.2, g.get_d_h(), 1e-12)
}

// 正方形断面の水力直径は一辺に等しい
func TestDuctGeometrySquare(t *testing.T) {
	g := DuctGeometry{W: 0.2, H: 0.2}
	assert.InEpsilon(t, 0.2, g.get_d_h(), 1e-12)
}

// 退化した断面：周長 0 のとき水力直径は 0 とする
func TestDuctGeometryDegenerate(t *testing.T) {
	g := DuctGeometry{W: 0.0, H: 0.0}
	assert.Equal(t, 0.0, g.get_area())
	assert.Equal(t, 0.0, g.get_d_h())

	// 片方のみ 0 の場合、面積と水力直径は 0 だが周長は正
	g = DuctGeometry{W: 0.3, H: 0.0}
	assert.Equal(t, 0.0, g.get_area())
	assert.Equal(t, 0.0, g.get_d_h())
	assert.Greater(t, g.get_perimeter(), 0.0)
}
