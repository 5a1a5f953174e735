package model

import "strings"

// Turn 左折・右折を表す記号（"L" または "R"）
type Turn string

const (
	TurnLeft  Turn = "L"
	TurnRight Turn = "R"
)

// DoubleTurn 連続する2回の曲がり方（"LL"・"LR"・"RL"・"RR"のいずれか）
type DoubleTurn string

const (
	DoubleTurnLL DoubleTurn = "LL"
	DoubleTurnLR DoubleTurn = "LR"
	DoubleTurnRL DoubleTurn = "RL"
	DoubleTurnRR DoubleTurn = "RR"
)

// IsValid 定義済みの4トークンのいずれかであるか
func (d DoubleTurn) IsValid() bool {
	switch d {
	case DoubleTurnLL, DoubleTurnLR, DoubleTurnRL, DoubleTurnRR:
		return true
	}
	return false
}

// Alternating 左右が入れ替わるトークン（LRまたはRL）かどうか
func (d DoubleTurn) Alternating() bool {
	return d == DoubleTurnLR || d == DoubleTurnRL
}

// TurnsFromManeuvers マニューバのラベル列を左右の記号列に還元する
// "LEFT"を含むラベルはL、"RIGHT"を含むラベルはR、どちらでもないもの（直進など）は捨てる
func TurnsFromManeuvers(maneuvers []string) []Turn {
	turns := make([]Turn, 0, len(maneuvers))
	for _, m := range maneuvers {
		switch {
		case strings.Contains(m, "LEFT"):
			turns = append(turns, TurnLeft)
		case strings.Contains(m, "RIGHT"):
			turns = append(turns, TurnRight)
		}
	}
	return turns
}

// DoubleTurnsFromTurns 曲がり列から隣接ペアを重ねて取り出す
// 長さnの入力からn-1個のトークンが得られる（n<2なら空）
func DoubleTurnsFromTurns(turns []Turn) []DoubleTurn {
	if len(turns) < 2 {
		return nil
	}
	doubles := make([]DoubleTurn, 0, len(turns)-1)
	for i := 0; i < len(turns)-1; i++ {
		doubles = append(doubles, DoubleTurn(string(turns[i])+string(turns[i+1])))
	}
	return doubles
}

// RouteEntry 有効点のペア1組に対する経路と曲がり列のレコード
// OriginIndex・DestinationIndexは元のグリッド点列のインデックス（ValidPoint.GridIndex）
type RouteEntry struct {
	PlaceID          int64        `json:"place_id"`
	OriginIndex      int          `json:"origin_index"`
	DestinationIndex int          `json:"destination_index"`
	Maneuvers        []string     `json:"maneuvers"`
	Turns            []Turn       `json:"turns"`
	DoubleTurns      []DoubleTurn `json:"double_turns"`
}
