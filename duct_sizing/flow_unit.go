package duct_sizing

// 風量の単位
type FlowUnit string

// 風量の単位の定数
const (
	FlowUnitLS  FlowUnit = "L/s"
	FlowUnitM3S FlowUnit = "m3/s"
	FlowUnitM3H FlowUnit = "m3/h"
)

/*
指定された単位の風量を m3/s に換算する。

    Args:
        q: 風量（単位は FlowUnit に従う）

    Returns:
        風量, m3/s
*/
func (u FlowUnit) to_m3s(q float64) float64 {
	switch u {
	case FlowUnitLS:
		return q / 1000.0
	case FlowUnitM3S, "":
		return q
	case FlowUnitM3H:
		return q / 3600.0
	default:
		panic("invalid flow unit")
	}
}

/*
風量の単位として解釈できるかを返す。

    Notes:
        外部入力（CSV・xlsx・通信）由来の単位文字列の検証に用いる。
        空文字列は m3/s の既定値として扱うため有効とみなす。
*/
func (u FlowUnit) is_valid() bool {
	switch u {
	case FlowUnitLS, FlowUnitM3S, FlowUnitM3H, "":
		return true
	default:
		return false
	}
}

/*
mm を m に換算する。

    Args:
        mm: 長さ, mm

    Returns:
        長さ, m
*/
func mm_to_m(mm float64) float64 {
	return mm / 1000.0
}

/*
m を mm に換算する。

    Args:
        m: 長さ, m

    Returns:
        長さ, mm
*/
func m_to_mm(m float64) float64 {
	return m * 1000.0
}
