package repository

import (
	"context"

	"TurnSeq-App/internal/domain/model"
)

// RoadsProvider 座標を最寄りの道路上の座標にスナップする
// 近くに道路がない場合は(nil, nil)を返す（エラーではなく正常な結果）
// 通信エラーやAPIのエラーペイロードのみがエラーになる
type RoadsProvider interface {
	SnapToRoad(ctx context.Context, point model.LatLng) (*model.LatLng, error)
}
