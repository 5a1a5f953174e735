package model

import "errors"

// パイプライン各段で使う番兵エラー
// 各層はfmt.Errorfの%wでラップし、呼び出し側はerrors.Isで判定する
var (
	// ErrPlaceNotFound ジオコーディングで場所が解決できなかった
	ErrPlaceNotFound = errors.New("場所が見つかりません")

	// ErrInvalidGranularity グリッド分割数が1未満（設定エラー）
	ErrInvalidGranularity = errors.New("グリッド分割数は1以上である必要があります")

	// ErrNoGridPoints ポリゴン内に1点もグリッド点が残らなかった（設定エラー）
	ErrNoGridPoints = errors.New("ポリゴン内にグリッド点が見つかりません")

	// ErrNoValidPoints 道路スナップに成功した点が1つもなかった
	ErrNoValidPoints = errors.New("道路スナップに成功した点がありません")

	// ErrSameLocation 出発地と目的地が同一座標（経路計算の前提条件違反）
	ErrSameLocation = errors.New("出発地と目的地は異なる座標である必要があります")

	// ErrEmptyDoubleTurns 交替率の計算対象が空（定義されない量）
	ErrEmptyDoubleTurns = errors.New("ダブルターン列が空のため交替率を定義できません")

	// ErrInvalidDoubleTurn LL・LR・RL・RR以外のトークンが混入している（上流の契約違反）
	ErrInvalidDoubleTurn = errors.New("ダブルターンはLL・LR・RL・RRのいずれかである必要があります")

	// ErrRemoteService 外部APIがエラーペイロードを返した
	ErrRemoteService = errors.New("外部APIがエラーを返しました")
)
