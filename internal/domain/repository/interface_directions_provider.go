package repository

import (
	"context"

	"TurnSeq-App/internal/domain/model"
)

// DirectionsProvider 2点間の運転経路を計算し、マニューバのラベル列を返す
// origin == destination は前提条件違反でmodel.ErrSameLocationになる
// 経路が返らなかった場合は空のスライスを返す（エラーではない）
type DirectionsProvider interface {
	ComputeRoute(ctx context.Context, origin, destination model.LatLng) ([]string, error)
}
