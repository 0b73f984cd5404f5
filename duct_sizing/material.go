package duct_sizing

// ダクトの材質
type Material string

// ダクトの材質の定数
const (
	MaterialGalvanisedSteel Material = "galvanised_steel" // 亜鉛めっき鋼板
	MaterialMildSteel       Material = "mild_steel"       // 軟鋼板
	MaterialAluminium       Material = "aluminium"        // アルミニウム板
	MaterialPVC             Material = "pvc"              // 硬質塩化ビニル
)

/*
材質から絶対粗度を取得する。

    Returns:
        絶対粗度, m

    Notes:
        未知の材質の場合は亜鉛めっき鋼板の値にフォールバックする。
*/
func (m Material) get_epsilon() float64 {
	switch m {
	case MaterialGalvanisedSteel:
		return 1.5e-4
	case MaterialMildSteel:
		return 4.5e-5
	case MaterialAluminium:
		return 1.8e-6
	case MaterialPVC:
		return 5.0e-7
	default:
		return 1.5e-4 // 亜鉛めっき鋼板
	}
}
