package repository

import (
	"context"

	"TurnSeq-App/internal/domain/model"
)

// PlacesStoreRepository 解析結果の追記専用ストア
// 場所・点・経路の3種類の行集合を場所IDをキーとして保存する
type PlacesStoreRepository interface {
	// HasPlace 同じ場所IDの解析が既に保存されているか（重複挿入の回避に使う）
	HasPlace(ctx context.Context, placeID int64) (bool, error)

	// SaveAnalysis 集約を3つの行集合に射影してまとめて保存する
	SaveAnalysis(ctx context.Context, analysis *model.PlaceAnalysis) error
}
