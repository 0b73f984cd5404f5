package duct_sizing

// 空気状態のプリセット名
type AirPreset string

// 空気状態のプリセット名の定数
const (
	AirPresetStandard AirPreset = "standard" // 標準（設計用）
	AirPresetSummer   AirPreset = "summer"   // 夏期冷房時の給気
	AirPresetWinter   AirPreset = "winter"   // 冬期暖房時の給気
	AirPresetKitchen  AirPreset = "kitchen"  // 厨房排気
)

/*
プリセット名から空気状態を取得する。

    Args:
        p: プリセット名

    Returns:
        空気状態

    Notes:
        未知のプリセット名の場合は標準状態（20 degree C, 50 %）にフォールバックする。
        プリセットはプロセス全体で共有する読み取り専用の定数テーブルである。
*/
func GetAirPreset(p AirPreset) AirState {
	preset, ok := map[AirPreset]AirState{
		AirPresetStandard: {Theta: 20.0, Rh: 50.0},
		AirPresetSummer:   {Theta: 26.0, Rh: 60.0},
		AirPresetWinter:   {Theta: 22.0, Rh: 40.0},
		AirPresetKitchen:  {Theta: 30.0, Rh: 70.0},
	}[p]

	if !ok {
		return AirState{Theta: 20.0, Rh: 50.0}
	}

	return preset
}
