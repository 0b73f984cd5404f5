package server

import (
	"gopkg.in/ini.v1"

	log "github.com/sirupsen/logrus"
)

var srvCfg Config

// サーバー設定
type Config struct {
	Addr string // 待ち受けアドレス

	// 再計算要求の受け付けレート（1秒あたり）とバースト数
	SolveRate  float64
	SolveBurst int

	// 計算ケースが空気状態を持たない場合の既定値
	DefaultTheta float64 // degree C
	DefaultRh    float64 // %
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("設定ファイルが読み込めないため既定値を使用します: ", err)
		file = ini.Empty()
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	srvCfg = Config{
		Addr:         file.Section("server").Key("Addr").MustString(":9000"),
		SolveRate:    file.Section("server").Key("SolveRate").MustFloat64(20.0),
		SolveBurst:   file.Section("server").Key("SolveBurst").MustInt(5),
		DefaultTheta: file.Section("air").Key("Theta").MustFloat64(20.0),
		DefaultRh:    file.Section("air").Key("Rh").MustFloat64(50.0),
	}
}
