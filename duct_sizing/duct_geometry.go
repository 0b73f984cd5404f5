package duct_sizing

// 矩形ダクトの断面形状
type DuctGeometry struct {
	W float64 // 幅, m
	H float64 // 高さ, m
}

/*
断面積を計算する。

    Returns:
        断面積, m2
*/
func (g DuctGeometry) get_area() float64 {
	return g.W * g.H
}

/*
周長を計算する。

    Returns:
        周長, m
*/
func (g DuctGeometry) get_perimeter() float64 {
	return 2.0 * (g.W + g.H)
}

/*
水力直径を計算する。

    Returns:
        水力直径, m

    Notes:
        D_h = 4 A / P
        周長が 0 の場合は定義できないため 0 を返す。
*/
func (g DuctGeometry) get_d_h() float64 {
	p := g.get_perimeter()
	if p <= 0.0 {
		return 0.0
	}
	return 4.0 * g.get_area() / p
}
