package server

import (
	"encoding/json"
	"math"
	"time"

	"duct_sizing_calc/duct_sizing"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// クライアントとのメッセージ
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 計算要求（Content の JSON）
type SolveRequest struct {
	Mode     string  `json:"mode"`
	W_mm     float64 `json:"width_mm"`
	H_mm     float64 `json:"height_mm"`
	Q        float64 `json:"flow"`
	QUnit    string  `json:"flow_unit"`
	V        float64 `json:"velocity_ms"`
	Dp       float64 `json:"dp_pa_m"`
	Theta    float64 `json:"temperature_c"`
	Rh       float64 `json:"rh_percent"`
	Material string  `json:"material"`
}

// 計算結果（Content の JSON）
// JSON は Inf / NaN を表現できないため、非有限の値は null として返す。
// クライアント側は null を「未定義」（isFinite 偽）として扱う。
type SolveResponse struct {
	Mode     string     `json:"mode"`
	W_mm     *jsonFloat `json:"width_mm"`
	H_mm     *jsonFloat `json:"height_mm"`
	Q_m3s    *jsonFloat `json:"flow_m3s"`
	V        *jsonFloat `json:"velocity_ms"`
	Re       *jsonFloat `json:"reynolds"`
	Lambda   *jsonFloat `json:"friction_factor"`
	Dp       *jsonFloat `json:"dp_pa_m"`
	Pv       *jsonFloat `json:"velocity_pressure_pa"`
	D_h_mm   *jsonFloat `json:"hydraulic_diameter_mm"`
	Solved   bool       `json:"solved"`
	Warnings []string   `json:"warnings"`
}

type jsonFloat float64

// 有限の値のみをポインタとして返す。非有限は nil（JSON では null）。
func _finite(v float64) *jsonFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f := jsonFloat(v)
	return &f
}

// Hub は1接続分の計算要求と応答を仲介する。
// 計算エンジン自体は無状態・同期的であるため、接続ごとに独立に実行できる。
type Hub struct {
	conn *websocket.Conn
	// request
	msg chan Msg
	// response
	solved chan Msg
	// 接続の読み取りループ終了時に閉じられ、両ゴルーチンを停止させる
	done chan struct{}
	// 連続する再計算要求の間引き（デバウンスは呼び出し側の責務）
	limiter *rate.Limiter
}

func NewHub() *Hub {
	return &Hub{
		msg:     make(chan Msg, 10),
		solved:  make(chan Msg, 10),
		done:    make(chan struct{}),
		limiter: rate.NewLimiter(rate.Limit(srvCfg.SolveRate), srvCfg.SolveBurst),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.solved:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Println("err: ", err)
			}
		case <-h.done:
			return
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case "solve":
				// 高頻度の再計算要求はレートリミットで間引く。
				if !h.limiter.Allow() {
					continue
				}
				h.solved <- h.solve(msg)
			default:
				log.Println("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

/*
計算要求を解き、応答メッセージを組み立てる。

    Args:
        msg: 計算要求メッセージ

    Returns:
        応答メッセージ（Type: "result"、Content: 計算結果の JSON）
*/
func (h *Hub) solve(msg Msg) Msg {
	var req SolveRequest
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		log.Println("err: ", err)
		return Msg{Type: "error", Content: "invalid request"}
	}

	row := duct_sizing.CaseRow{
		Mode:     req.Mode,
		W_mm:     req.W_mm,
		H_mm:     req.H_mm,
		Q:        req.Q,
		QUnit:    req.QUnit,
		V:        req.V,
		Dp:       req.Dp,
		Theta:    req.Theta,
		Rh:       req.Rh,
		Material: req.Material,
	}
	if row.Theta == 0.0 && row.Rh == 0.0 {
		row.Theta = srvCfg.DefaultTheta
		row.Rh = srvCfg.DefaultRh
	}

	res := duct_sizing.Dispatch(row.ToSolveInput())

	resp := SolveResponse{
		Mode:     string(res.Mode),
		W_mm:     _finite(res.W_mm),
		H_mm:     _finite(res.H_mm),
		Q_m3s:    _finite(res.Q),
		V:        _finite(res.V),
		Re:       _finite(res.Re),
		Lambda:   _finite(res.Lambda),
		Dp:       _finite(res.Dp),
		Pv:       _finite(res.Pv),
		D_h_mm:   _finite(res.D_h_mm),
		Solved:   res.Solved,
		Warnings: res.Warnings,
	}

	data, err := json.Marshal(&resp)
	if err != nil {
		log.Println("err: ", err)
		return Msg{Type: "error", Content: "marshal error"}
	}

	return Msg{Type: "result", Content: string(data)}
}
