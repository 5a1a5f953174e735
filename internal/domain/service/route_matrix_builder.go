package service

import (
	"context"
	"fmt"
	"log"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
)

// RouteMatrixBuilder 有効点の全順序対に対して経路と曲がり列を求めるビルダー
// 点数nに対してO(n^2)回の経路リクエストを行う設計で、
// 呼び出し回数を減らしたい場合は上流で点数を絞ってから渡す
type RouteMatrixBuilder struct {
	directionsProvider repository.DirectionsProvider
}

func NewRouteMatrixBuilder(provider repository.DirectionsProvider) *RouteMatrixBuilder {
	return &RouteMatrixBuilder{directionsProvider: provider}
}

// BuildMatrix 出発地メジャー・目的地マイナーの順で全ペアを列挙する
// 座標が値として等しいペアは経路を求めずに読み飛ばす（インデックスが違っても同様）
// 1件でも経路リクエストが失敗したら行列全体の構築を中断し、部分結果は返さない
func (b *RouteMatrixBuilder) BuildMatrix(ctx context.Context, placeID int64, points []model.ValidPoint) ([]model.RouteEntry, error) {
	log.Printf("🔄 経路行列の構築開始 (有効点数: %d, 最大ペア数: %d)", len(points), len(points)*(len(points)-1))

	var entries []model.RouteEntry
	for _, origin := range points {
		for _, destination := range points {
			if origin.Point.Equal(destination.Point) {
				continue
			}

			maneuvers, err := b.directionsProvider.ComputeRoute(ctx, origin.Point, destination.Point)
			if err != nil {
				return nil, fmt.Errorf("経路取得に失敗 (origin=%d, destination=%d): %w",
					origin.GridIndex, destination.GridIndex, err)
			}

			turns := model.TurnsFromManeuvers(maneuvers)
			entries = append(entries, model.RouteEntry{
				PlaceID:          placeID,
				OriginIndex:      origin.GridIndex,
				DestinationIndex: destination.GridIndex,
				Maneuvers:        maneuvers,
				Turns:            turns,
				DoubleTurns:      model.DoubleTurnsFromTurns(turns),
			})
		}
	}

	log.Printf("✅ 経路行列の構築完了 (%d件)", len(entries))
	return entries, nil
}
